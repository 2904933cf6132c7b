package main

import (
	"os"

	"github.com/rhyrak/go-syllabus/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error("%v", err)
		log.Sync()
		os.Exit(1)
	}
	log.Sync()
}
