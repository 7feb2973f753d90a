package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/portrait-studio/tui/internal/app"
	"github.com/portrait-studio/tui/internal/client"
	"github.com/portrait-studio/tui/internal/config"
)

func main() {
	wsURL := flag.String("url", "", "WebSocket URL of the Portrait Studio backend (overrides config)")
	token := flag.String("token", "", "Auth token (overrides config)")
	cfgPath := flag.String("config", "", "Path to YAML config file")
	demo := flag.Bool("demo", false, "Run with fabricated portraits, no backend")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *wsURL != "" {
		cfg.Server.URL = *wsURL
	}
	if *token != "" {
		cfg.Server.Token = *token
	}

	ws := client.NewWSClient(cfg.Server.URL, cfg.Server.Token)
	httpClient := client.NewHTTPClient(deriveHTTPBase(cfg.Server.URL), cfg.Server.Token)

	m := app.New(ws, httpClient, cfg, *demo)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// deriveHTTPBase converts ws://host:port/ws → http://host:port
func deriveHTTPBase(wsURL string) string {
	u, err := url.Parse(wsURL)
	if err != nil {
		return "http://127.0.0.1:8080"
	}
	scheme := "http"
	if strings.HasPrefix(u.Scheme, "wss") {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, u.Host)
}
