package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/howeyc/fsnotify"

	"github.com/arketec/brainfk/bf"
)

// watchMode runs the program file, then re-runs it whenever it changes.
// Faults are logged rather than fatal so an edit that breaks the
// program can be fixed without restarting. The machine is rebuilt each
// run because an edit may change the inline options header.
func watchMode(file string, cfg *bf.Config) error {
	file = filepath.Clean(file)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Watch(filepath.Dir(file)); err != nil {
		return err
	}

	run := time.After(1 * time.Millisecond)
	for {
		select {
		case <-run:
			log.Printf("watch: run %s", filepath.Base(file))
			src, err := os.ReadFile(file)
			if err != nil {
				log.Printf("watch: %v", err)
				break
			}
			runCfg := *cfg
			applyHeader(&runCfg, string(src))
			m := bf.NewMachine(&runCfg)
			m.Con = newConsole(&runCfg)
			if err := m.Execute(string(src)); err != nil {
				log.Printf("watch: %v", err)
			}
		case ev := <-watcher.Event:
			if ev.Name == file && !ev.IsAttrib() {
				run = time.After(100 * time.Millisecond)
			}
		case err := <-watcher.Error:
			log.Printf("watch: watcher: %v", err)
		}
	}
}
