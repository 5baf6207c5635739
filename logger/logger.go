//go:build !dev
// +build !dev

package logger

import "log"

func HandleLog(msg string) {
	log.Println(msg)
}

func HandleError(err error) {
	log.Printf("Error: %v\n", err)
}
