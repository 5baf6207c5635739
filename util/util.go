package util

import (
	"encoding/json"
	"fmt"

	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// CorporaDir is where the cli looks for corpus directories
const CorporaDir = "./corpora"

func JSONToFile(j []byte, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		fmt.Println(err)
		return
	}
	l, err := f.Write(j)
	if err != nil {
		fmt.Println(err)
		f.Close()
		return
	}
	fmt.Println(l, "bytes written successfully")
	err = f.Close()
	if err != nil {
		fmt.Println(err)
		return
	}
}

func MapToJSONGeneric(m map[string]interface{}, createFile bool, filename string) string {
	if len(m) == 0 {
		fmt.Println("map is empty")
		return ""
	}

	b, err := json.Marshal(m)
	if err != nil {
		fmt.Println("error:", err)
		return ""
	}
	if createFile {
		JSONToFile(b, filename)
	}
	return string(b)
}

func SelectDirectory() string {
	directories := GetAvailableCorpusDirectories()
	options := []string{}
	for _, d := range directories {
		options = append(options, "○ "+d)
	}
	options = append(options, "○ Exit")

	prompt := &survey.Select{
		Message: "Select a corpus to load:",
		Options: options,
	}

	var selectedDirectory string
	err := survey.AskOne(prompt, &selectedDirectory)
	if err != nil {
		log.Fatal(err)
	}

	return selectedDirectory
}

func GetAvailableCorpusDirectories() []string {
	files, err := os.ReadDir(CorporaDir)
	if err != nil {
		log.Println(err)
		err := os.Mkdir(CorporaDir, os.FileMode(0777))
		if err != nil {
			log.Println(err)
		}
	}

	directories := []string{}
	for _, f := range files {
		if f.IsDir() {
			if f.Name() == "src" || f.Name() == ".git" {
				continue
			}
			directories = append(directories, f.Name())
		}
	}

	return directories
}

func CheckDirIsValid(dirName string) (bool, error) {
	_, err := os.Stat("./" + dirName)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil // Directory does not exist
		}
		return false, err // Some other error occurred
	}
	return true, nil // Directory exists
}

func GetDirLength(dirName string) int {
	files, err := os.ReadDir("./" + dirName)
	if err != nil {
		log.Fatal(err)
	}

	return len(files)
}

const (
	TerminalReset  = "\033[0m"
	TerminalRed    = "\033[31m"
	TerminalGreen  = "\033[32m"
	TerminalYellow = "\033[33m"
	TerminalBlue   = "\033[34m"
	TerminalPurple = "\033[35m"
	TerminalCyan   = "\033[36m"
	TerminalWhite  = "\033[37m"
)
