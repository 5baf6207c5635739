package corpus

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"math"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/deanrtaylor1/govsm/lexer"
	"github.com/deanrtaylor1/govsm/logger"
	"github.com/deanrtaylor1/govsm/sparse"
	"github.com/deanrtaylor1/govsm/tfidf"
	"github.com/deanrtaylor1/govsm/util"
)

// CacheFileName is the gzip file a built model is cached under
const CacheFileName = "model.gz"

// Model holds a loaded corpus and its fused tf-idf matrix. Docs are cleaned,
// whitespace tokenizable strings in matrix row order, DocNames and DocPaths
// are parallel to Docs.
type Model struct {
	Name     string
	Docs     []string
	DocNames []string
	DocPaths []string
	Vocab    tfidf.Vocabulary
	Matrix   *sparse.Matrix
	Scheme   tfidf.Scheme
	Alpha    float64
	//DF is the document frequency of a term, kept for corpus stats display
	DF         map[string]int
	DocCount   int
	TermCount  int
	ModelLock  *sync.Mutex
	IsComplete bool
}

type ResultsMap struct {
	Name  string  `json:"name"`
	Path  string  `json:"path"`
	Score float64 `json:"score"`
}

// Snapshot of a model suitable for gob encoding, the matrix is rebuilt from
// the documents on load rather than serialized
type CachedModel struct {
	Name     string
	Docs     []string
	DocNames []string
	DocPaths []string
	Scheme   tfidf.Scheme
	Alpha    float64
}

type FileOps interface {
	MkdirAll(dirName string, perm os.FileMode) error
	CompressAndWriteGzipFile(filename string, data interface{}, dirName string) error
}

type FileOpsImpl struct{}

func (f FileOpsImpl) MkdirAll(dirName string, perm os.FileMode) error {
	return os.MkdirAll(dirName, perm)
}

func (f FileOpsImpl) CompressAndWriteGzipFile(filename string, data interface{}, dirName string) error {
	return CompressAndWriteGzipFile(filename, data, dirName)
}

type FileOpsNoOp struct{}

func (f FileOpsNoOp) MkdirAll(dirName string, perm os.FileMode) error {
	return nil
}

func (f FileOpsNoOp) CompressAndWriteGzipFile(filename string, data interface{}, dirName string) error {
	return nil
}

// This function returns a new empty corpus model with the default weighting
func NewEmptyModel() *Model {
	return &Model{
		Scheme:    tfidf.SchemeAugmented,
		Alpha:     tfidf.DefaultAlpha,
		DF:        make(map[string]int),
		ModelLock: &sync.Mutex{},
	}
}

// This is used to reset the model before loading a new corpus
func ResetModel(model *Model) {
	model.ModelLock.Lock()
	defer model.ModelLock.Unlock()
	model.Name = ""
	model.Docs = nil
	model.DocNames = nil
	model.DocPaths = nil
	model.Vocab = nil
	model.Matrix = nil
	model.DF = make(map[string]int)
	model.DocCount = 0
	model.TermCount = 0
	model.IsComplete = false
}

// AddDocument cleans raw content through the lexer and appends it as a new
// matrix row, the matrix itself is stale until Rebuild runs
func AddDocument(model *Model, name string, docPath string, content string) {
	cleaned := lexer.Clean(content)

	tf := make(map[string]int)
	for _, token := range strings.Fields(cleaned) {
		tf[token] += 1
	}

	model.ModelLock.Lock()
	defer model.ModelLock.Unlock()
	for token := range tf {
		model.TermCount += 1
		model.DF[token] += 1
	}
	model.Docs = append(model.Docs, cleaned)
	model.DocNames = append(model.DocNames, name)
	model.DocPaths = append(model.DocPaths, docPath)
	model.DocCount += 1
}

// Rebuild extracts the vocabulary from the loaded documents and recomputes
// the fused tf-idf matrix
func Rebuild(model *Model) {
	model.ModelLock.Lock()
	defer model.ModelLock.Unlock()
	model.Vocab = lexer.UniqueWords(model.Docs)
	model.Matrix = tfidf.TfIdf(model.Docs, model.Vocab, model.Scheme, model.Alpha)
}

// LoadDirectoryToModel reads every regular file in dirPath into the model,
// html files go through the text extractor first, then rebuilds the matrix
func LoadDirectoryToModel(dirPath string, model *Model) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		logger.HandleError(err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == CacheFileName {
			continue
		}
		filePath := path.Join(dirPath, entry.Name())
		raw, err := os.ReadFile(filePath)
		if err != nil {
			logger.HandleError(err)
			continue
		}
		content := string(raw)
		ext := filepath.Ext(entry.Name())
		if ext == ".html" || ext == ".htm" {
			content = lexer.ParseHtmlTextContent(content)
		}
		AddDocument(model, entry.Name(), filePath, content)
	}

	Rebuild(model)

	model.ModelLock.Lock()
	model.IsComplete = true
	model.ModelLock.Unlock()
	logger.HandleLog(fmt.Sprintf("\n------------------\n%sFINISHED LOADING MODEL%s\n------------------\n", util.TerminalGreen, util.TerminalReset))
}

// RankBySimilarity scores every corpus document against the query and returns
// the results sorted best first along with the number of query terms that
// matched the vocabulary
func RankBySimilarity(model *Model, query string) ([]ResultsMap, int) {
	model.ModelLock.Lock()
	defer model.ModelLock.Unlock()

	//the matrix is nil until the first Rebuild finishes
	if model.Matrix == nil {
		return nil, 0
	}

	cleaned := lexer.Clean(query)
	queryMatrix := tfidf.TermFrequency([]string{cleaned}, model.Vocab)
	count := queryMatrix.NNZ()

	scores := tfidf.Sim(model.Matrix, queryMatrix)

	var result []ResultsMap
	for j := range model.Docs {
		score := scores[0][j]
		//all-zero rows normalize to NaN, treat those documents as unrelated
		if math.IsNaN(score) {
			score = 0
		}
		result = append(result, ResultsMap{Name: model.DocNames[j], Path: model.DocPaths[j], Score: score})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})

	return result, count
}

// This function is a utility function to filter out results based on a predicate
func FilterResults(results []ResultsMap, filter func(float64) bool) []ResultsMap {
	var filteredResults []ResultsMap
	for _, result := range results {
		if filter(result.Score) {
			filteredResults = append(filteredResults, result)
		}
	}
	return filteredResults
}

// Utility predicate, shifted similarity above 1 means the cosine itself was positive
func IsAboveBaseline(value float64) bool {
	return value > 1
}

// This function is used to reset the results (used in case the query is too generic and results are 0)
func ResetResultsMap(result []ResultsMap) []ResultsMap {
	for i := range result {
		result[i] = ResultsMap{}
	}
	return result
}

// This function is used to write and compress a datastructure to disk
func CompressAndWriteGzipFile(fileName string, data interface{}, dirName string) error {
	var compressedData bytes.Buffer
	gzipWriter := gzip.NewWriter(&compressedData)

	encoder := gob.NewEncoder(gzipWriter)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("error encoding model data: %v", err)
	}

	if err := gzipWriter.Close(); err != nil {
		return fmt.Errorf("error closing gzip writer: %v", err)
	}

	if err := os.WriteFile(path.Join(dirName, fileName), compressedData.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing compressed data to disk: %v", err)
	}

	return nil
}

// SaveModelToCache snapshots the model into dirPath/model.gz so the corpus
// does not have to be re-read next time
func SaveModelToCache(model *Model, dirPath string, fileOps FileOps) error {
	model.ModelLock.Lock()
	cached := CachedModel{
		Name:     model.Name,
		Docs:     model.Docs,
		DocNames: model.DocNames,
		DocPaths: model.DocPaths,
		Scheme:   model.Scheme,
		Alpha:    model.Alpha,
	}
	model.ModelLock.Unlock()

	if err := fileOps.MkdirAll(dirPath, 0755); err != nil {
		return err
	}
	return fileOps.CompressAndWriteGzipFile(CacheFileName, cached, dirPath)
}

// LoadCachedGobToModel reads a cached snapshot from dirPath/model.gz back
// into the model and rebuilds the matrix from the cached documents
func LoadCachedGobToModel(dirPath string, model *Model) error {
	compressedData, err := os.ReadFile(path.Join(dirPath, CacheFileName))
	if err != nil {
		logger.HandleError(err)
		return err
	}

	gzipReader, err := gzip.NewReader(bytes.NewReader(compressedData))
	if err != nil {
		logger.HandleError(err)
		return err
	}

	decoder := gob.NewDecoder(gzipReader)
	gzipReader.Close()
	var cached CachedModel
	if err := decoder.Decode(&cached); err != nil {
		logger.HandleError(err)
		return err
	}

	model.ModelLock.Lock()
	model.Name = cached.Name
	model.Docs = cached.Docs
	model.DocNames = cached.DocNames
	model.DocPaths = cached.DocPaths
	model.Scheme = cached.Scheme
	model.Alpha = cached.Alpha
	model.DF = make(map[string]int)
	model.DocCount = len(cached.Docs)
	model.TermCount = 0
	for _, doc := range cached.Docs {
		seen := make(map[string]bool)
		for _, token := range strings.Fields(doc) {
			if !seen[token] {
				seen[token] = true
				model.TermCount += 1
				model.DF[token] += 1
			}
		}
	}
	model.ModelLock.Unlock()

	Rebuild(model)

	model.ModelLock.Lock()
	model.IsComplete = true
	model.ModelLock.Unlock()
	logger.HandleLog(fmt.Sprintf("\n------------------\n%sFINISHED LOADING MODEL%s\n------------------\n", util.TerminalGreen, util.TerminalReset))
	return nil
}
