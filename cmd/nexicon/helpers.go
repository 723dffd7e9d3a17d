package main

import (
	"fmt"
	"os"

	"github.com/nexicon/nexicon-cli/pkg/auth"
	"github.com/nexicon/nexicon-cli/pkg/models"
	"github.com/nexicon/nexicon-cli/pkg/output"
	"github.com/nexicon/nexicon-cli/pkg/storage"
	"github.com/nexicon/nexicon-cli/pkg/store"
)

// app bundles the wired application state. The store is created here and
// injected everywhere; nothing below the command layer holds a global.
type app struct {
	slot  *storage.Slot
	store *store.Store
	auth  *auth.Manager
}

var theApp *app

// initApp opens the storage slot and rehydrates the store from it,
// seeding demo data on first run.
func initApp() error {
	slot, err := storage.Open()
	if err != nil {
		return err
	}

	snap := slot.Load()
	if snap == nil {
		snap = store.Seed()
	}

	st := store.New(snap, slot)

	theApp = &app{
		slot:  slot,
		store: st,
		auth:  auth.New(st, slot.Dir()),
	}
	return nil
}

func getStore() *store.Store {
	return theApp.store
}

func getAuth() *auth.Manager {
	return theApp.auth
}

// getOutputPrinter creates an output printer based on global flags
func getOutputPrinter() *output.Printer {
	format := output.FormatHuman
	if flagJSON {
		format = output.FormatJSON
	} else if flagRaw {
		format = output.FormatRaw
	}

	return output.New(format, flagQuiet)
}

// requireLogin exits unless a session user is set.
func requireLogin(out *output.Printer) *models.User {
	user := getStore().CurrentUser()
	if user == nil {
		out.Error(fmt.Errorf("not logged in: run 'nexicon login <handle>' first"))
		os.Exit(1)
	}
	return user
}

// limitOrDefault applies the global --limit flag with a fallback.
func limitOrDefault(def int) int {
	if flagLimit > 0 {
		return flagLimit
	}
	return def
}
