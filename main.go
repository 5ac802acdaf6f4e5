package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/qrmaster/qr-master/internal/config"
	"github.com/qrmaster/qr-master/internal/generator"
	"github.com/qrmaster/qr-master/internal/history"
	"github.com/qrmaster/qr-master/internal/scanner"
	"github.com/qrmaster/qr-master/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.qrmaster.qr-master"
	AppName = "QR Master"

	WindowWidth  = 420
	WindowHeight = 760

	loadTimeout = 5 * time.Second
)

func main() {
	log.Printf("QR Master v%s starting...", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)

	store := history.NewStore(
		history.NewPreferencesBackend(myApp.Preferences()),
		history.WithCapacity(settings.GetHistoryLimit()),
	)

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	if _, err := store.Load(ctx); err != nil {
		// Start with an empty history rather than refusing to run
		log.Printf("History load failed, starting empty: %v", err)
	}
	cancel()

	gen := generator.NewController(store, settings.GetDefaultStyle())
	if err := gen.SelectCategory(settings.GetDefaultCategory()); err != nil {
		log.Printf("Default category rejected: %v", err)
	}

	gate := scanner.NewGate(time.Duration(settings.GetScanCooldownMs())*time.Millisecond, nil)
	scan := scanner.NewController(store, gate)

	ui.NewRootUI(myWindow, myApp, settings, store, gen, scan)

	myApp.Lifecycle().SetOnStopped(func() {
		scan.Stop()
		if err := store.Close(); err != nil {
			log.Printf("Final history write failed: %v", err)
		}
	})

	myWindow.ShowAndRun()
}
