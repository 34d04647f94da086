package main

import (
	"flag"
	"io"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	var (
		serve      = flag.Bool("serve", false, "run the web companion instead of the TUI")
		configPath = flag.String("config", "zach-term.yaml", "path to the config file")
		initCfg    = flag.Bool("init", false, "write a starter config file and exit")
	)
	flag.Parse()

	if *initCfg {
		if err := DefaultConfig().Save(*configPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote starter config to %s", *configPath)
		return
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if *serve {
		runWeb(cfg)
		return
	}
	runTUI(cfg)
}

func runTUI(cfg *Config) {
	// log output would tear the alt screen apart; route it to a file when
	// debugging, otherwise drop it.
	if os.Getenv("ZACHTERM_DEBUG") != "" {
		f, err := tea.LogToFile("zach-term.log", "zach-term")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m := newModel(cfg)
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, opts...)
	m.send = p.Send

	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
