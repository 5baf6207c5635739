package cli

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/deanrtaylor1/govsm/corpus"
	"github.com/deanrtaylor1/govsm/lexer"
	"github.com/deanrtaylor1/govsm/tfidf"
	"github.com/deanrtaylor1/govsm/util"
)

//CLI Interface of GoVSM

// Utility function to show the user the current status of the corpus model
func logStatus(loading bool, model *corpus.Model) {
	loadState := "✓"
	if loading {
		loadState = "⌛"
	}

	model.ModelLock.Lock()
	totalDocs := model.DocCount
	totalTerms := model.TermCount
	model.ModelLock.Unlock()

	fmt.Printf(util.TerminalGreen+"Corpus Status: %s | %v documents loaded | %v terms indexed\n"+util.TerminalReset, loadState, totalDocs, totalTerms)
	fmt.Println("Type your query or press Ctrl+C to exit")
}

// Clean up the CLI response to remove the bullet point
func formatCliResponse(response string) string {
	return strings.Replace(response, "○ ", "", -1)
}

// Utility function to get a single input from the user
func getSingleInputPrompt(message string) string {
	prompt := &survey.Input{
		Message: message,
	}

	var input string
	err := survey.AskOne(prompt, &input)
	if err != nil {
		log.Fatal(err)
	}

	return input
}

// Start the CLI
func InitialPrompt(model *corpus.Model) {
	selected := formatCliResponse(util.SelectDirectory())

	if selected == "Exit" {
		os.Exit(0)
	}

	dirPath := path.Join(util.CorporaDir, selected)
	valid, err := util.CheckDirIsValid(dirPath)
	if err != nil || !valid {
		log.Println(util.TerminalRed, "Corpus directory is not readable, please pick another", util.TerminalReset)
		InitialPrompt(model)
		return
	}

	fmt.Println("Loading corpus directory: ", selected, " (", util.GetDirLength(dirPath), " files )")
	corpus.ResetModel(model)
	model.ModelLock.Lock()
	model.Name = selected
	model.ModelLock.Unlock()

	go func() {
		logStatus(true, model)
		if _, err := os.Stat(path.Join(dirPath, corpus.CacheFileName)); err == nil {
			if err := corpus.LoadCachedGobToModel(dirPath, model); err == nil {
				logStatus(false, model)
				return
			}
			//fall back to re-reading the files when the cache is unreadable
		}
		corpus.LoadDirectoryToModel(dirPath, model)
		if err := corpus.SaveModelToCache(model, dirPath, corpus.FileOpsImpl{}); err != nil {
			log.Println(err)
		}
		logStatus(false, model)
	}()

	StartQueryPrompt(model)
}

// Get the query from the user to rank the corpus against
func StartQueryPrompt(model *corpus.Model) {

	prompt := &survey.Input{
		Message: "Enter a query:",
	}

	var query string
	fmt.Println()
	err := survey.AskOne(prompt, &query)
	if err != nil {
		log.Fatal(err)
	}

	startQuery(query, model)
}

// Start the query process
func startQuery(query string, model *corpus.Model) {

	start := time.Now()

	result, count := corpus.RankBySimilarity(model, query)

	var max int
	if len(result) < 20 {
		max = len(result)
	} else {
		max = 20
	}

	var data []corpus.ResultsMap

	if len(result) == 0 || !corpus.IsAboveBaseline(result[0].Score) {
		data = []corpus.ResultsMap{{
			Path:  "No results found",
			Score: 0,
		}}
	} else {
		data = corpus.FilterResults(result[:max], corpus.IsAboveBaseline)
	}

	resultsList := []string{}
	for _, r := range data {
		resultsList = append(resultsList, fmt.Sprintf("○ %s (%.3f)", r.Name, r.Score))
	}
	resultsList = append(resultsList, "○ GoVSM: New Query")
	resultsList = append(resultsList, "○ GoVSM: Select Corpus")
	resultsList = append(resultsList, "○ GoVSM: Top Terms")
	resultsList = append(resultsList, "○ GoVSM: Export Results")

	prompt := &survey.Select{
		Message: "Results:",
		Options: resultsList,
	}
	elapsed := time.Since(start)

	log.Println("------------------------------------")
	log.Println(util.TerminalCyan+"Matched ", count, " query terms in ", elapsed.Milliseconds(), " ms"+util.TerminalReset)
	log.Println("------------------------------------")

	model.ModelLock.Lock()
	status := model.IsComplete
	model.ModelLock.Unlock()
	logStatus(!status, model)

	var selectedResult string

	fmt.Println("------------------------------------------------")
	err := survey.AskOne(prompt, &selectedResult)
	if err != nil {
		log.Fatal(err)
	}

	switch formatCliResponse(selectedResult) {
	case "GoVSM: New Query":
		StartQueryPrompt(model)
	case "GoVSM: Select Corpus":
		InitialPrompt(model)
	case "GoVSM: Top Terms":
		showTopTerms(model)
		startQuery(query, model)
	case "GoVSM: Export Results":
		exportResults(query, result)
		startQuery(query, model)
	default:
		selectedName := selectedResult
		if i := strings.LastIndex(selectedName, " ("); i >= 0 {
			selectedName = selectedName[:i]
		}
		selectedName = formatCliResponse(selectedName)
		for _, r := range data {
			if r.Name == selectedName && r.Path != "No results found" {
				openFile(r.Path)
				break
			}
		}
		startQuery(query, model)
	}

}

// Show the most frequent corpus terms by document frequency
func showTopTerms(model *corpus.Model) {
	model.ModelLock.Lock()
	stats := lexer.MapToSortedSlice(model.DF)
	model.ModelLock.Unlock()

	max := 20
	if len(stats) < max {
		max = len(stats)
	}
	log.Println("------------------------------------")
	for _, s := range stats[:max] {
		log.Println(util.TerminalYellow+s.Token+util.TerminalReset, " => ", s.Freq, " documents")
	}
	log.Println("------------------------------------")
}

// Write the ranked results for a query out to a json file
func exportResults(query string, results []corpus.ResultsMap) {
	m := make(map[string]interface{}, len(results))
	for _, r := range results {
		m[r.Name] = r.Score
	}
	filename := "results-" + strings.Join(strings.Fields(query), "-") + ".json"
	util.MapToJSONGeneric(m, true, filename)
	fmt.Println("Results written to ", filename)
}

// Open the selected document with the default application depending on OS
func openFile(filePath string) {
	fmt.Println(filePath)
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", filePath)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", filePath)
	default: // assume Linux or similar
		cmd = exec.Command("xdg-open", filePath)
	}
	err := cmd.Start()
	if err != nil {
		fmt.Println("Failed to open file:", err)
	}
}

// ConfigureModel prompts for the term weighting scheme and, for the augmented
// scheme, the alpha smoothing constant
func ConfigureModel(model *corpus.Model) {
	prompt := &survey.Select{
		Message: "Select a term weighting scheme:",
		Options: []string{"○ Augmented", "○ Raw", "○ Logarithmic", "○ Boolean"},
	}

	var selected string
	err := survey.AskOne(prompt, &selected)
	if err != nil {
		log.Fatal(err)
	}

	scheme := tfidf.SchemeAugmented
	alpha := tfidf.DefaultAlpha

	switch formatCliResponse(selected) {
	case "Raw":
		scheme = tfidf.SchemeRaw
	case "Logarithmic":
		scheme = tfidf.SchemeLog
	case "Boolean":
		scheme = tfidf.SchemeBoolean
	default:
		input := getSingleInputPrompt("Enter alpha (default 0.5):")
		if input != "" {
			parsed, err := strconv.ParseFloat(input, 64)
			if err != nil {
				log.Println(util.TerminalRed, "Could not parse alpha, using default", util.TerminalReset)
				parsed = tfidf.DefaultAlpha
			}
			alpha = parsed
		}
	}

	model.ModelLock.Lock()
	model.Scheme = scheme
	model.Alpha = alpha
	model.ModelLock.Unlock()
}
