package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/svanberg/segclock/internal/clock"
	"github.com/svanberg/segclock/internal/display"
	"github.com/svanberg/segclock/internal/remote"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	app     = kingpin.New("segclock", "Seven segment LED clock")
	debug   = app.Flag("debug", "Turn on debug logging.").Bool()
	cfgFile = app.Flag("config", "Path to the yaml config file.").Short('c').Default("config.yaml").String()
	logFile = app.Flag("log-file", "Log to the given file with rotation instead of stderr.").String()

	start = app.Command("start", "Run the clock and the remote control server")

	textCmd   = app.Command("text", "Show a message on the display")
	textArg   = textCmd.Arg("message", "Message to display.").Required().String()
	textRight = textCmd.Flag("right", "Right justify the message.").Bool()

	clearCmd = app.Command("clear", "Blank the display")
	offCmd   = app.Command("off", "Put the display in shutdown mode")

	version = app.Command("version", "Show current version.")
)

var buildTime, buildVersion string

func showVersion() {
	if buildTime != "" && buildVersion != "" {
		fmt.Printf("%s (built: %s)\n", buildVersion, buildTime)
	} else {
		fmt.Println("segclock: dev")
	}
}

func main() {
	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("%v: Try --help\n", err.Error())
		os.Exit(1)
	}

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if *debug {
		log.Info("Enabling debug output...")
		log.SetLevel(log.DebugLevel)
	}
	if *logFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   *logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	}

	if cmd == version.FullCommand() {
		showVersion()
		return
	}

	conf, err := getConfig(*cfgFile)
	if err != nil {
		log.Fatal("Unable to read configuration: ", err)
	}

	disp, err := display.Open(conf.DisplayConfig())
	if err != nil {
		log.Fatal("Unable to open display: ", err)
	}

	switch cmd {
	case start.FullCommand():
		if err := disp.Brightness(conf.brightness()); err != nil {
			log.Fatal("Unable to set brightness: ", err)
		}
		runClock(conf, disp)
	case textCmd.FullCommand():
		if err := disp.DisplayText(*textArg, *textRight); err != nil {
			log.Fatal("Unable to display message: ", err)
		}
	case clearCmd.FullCommand():
		if err := disp.Clear(); err != nil {
			log.Fatal("Unable to clear display: ", err)
		}
	case offCmd.FullCommand():
		if err := disp.Off(); err != nil {
			log.Fatal("Unable to turn off display: ", err)
		}
	default:
		kingpin.FatalUsage("Unrecognized command")
	}
}

func runClock(conf *Config, disp display.Display) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	c := clock.New(disp, conf.TimeFormat)
	go c.Run()

	srv := remote.NewServer(conf.Listen, disp)
	go srv.Listen()

	<-signalChan

	c.Close()
	if err := srv.Close(); err != nil {
		log.Warn("Unable to close remote control server: ", err)
	}
	if err := disp.Clear(); err != nil {
		log.Warn("Unable to clear display: ", err)
	}
	if err := disp.Off(); err != nil {
		log.Warn("Unable to shut down display: ", err)
	}

	log.Info("Done...")
}
