package commands

import (
	"fmt"
	"os"

	"photovault/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("photovault error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println(`photovault - photo storage and thumbnail service

Usage:
  photovault run <config.yml>   start the service
  photovault version            print the version
  photovault help               show this message`) //nolint
}
