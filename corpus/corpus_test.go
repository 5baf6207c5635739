package corpus

import (
	"math"
	"os"
	"testing"
)

type TestData struct {
	Name  string
	Value int
}

func buildTestModel() *Model {
	model := NewEmptyModel()
	AddDocument(model, "about-cats.txt", "corpora/animals/about-cats.txt", "cat cat cat")
	AddDocument(model, "about-dogs.txt", "corpora/animals/about-dogs.txt", "dog dog dog")
	AddDocument(model, "about-fish.txt", "corpora/animals/about-fish.txt", "fish fish fish")
	Rebuild(model)
	model.IsComplete = true
	return model
}

func TestCompressAndWriteGZipFile(t *testing.T) { // Prepare test data
	filOpsImpl := FileOpsImpl{}

	data := TestData{
		Name:  "Test",
		Value: 42,
	}

	// Define file name and directory name
	fileName := "testfile.gz"
	dirName := "testdir"

	// Create a temporary directory
	if err := filOpsImpl.MkdirAll(dirName, 0755); err != nil {
		t.Fatalf("Failed to create temporary directory: %v", err)
	}

	// Call the CompressAndWriteGzipFile function
	if err := filOpsImpl.CompressAndWriteGzipFile(fileName, data, dirName); err != nil {
		t.Fatalf("Failed to compress and write gzip file: %v", err)
	}

	// Check if the file exists
	filePath := dirName + "/" + fileName
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		t.Fatalf("File %s does not exist", filePath)
	}

	// Clean up: remove the file and the temporary directory
	if err := os.Remove(filePath); err != nil {
		t.Fatalf("Failed to remove temporary file: %v", err)
	}

	if err := os.Remove(dirName); err != nil {
		t.Fatalf("Failed to remove temporary directory: %v", err)
	}

	fileOpsNoImpl := FileOpsNoOp{}

	if err := fileOpsNoImpl.MkdirAll(dirName, 0755); err != nil {
		t.Fatalf("Error should be nil as this is a mocking DI: %v", err)
	}
	fileOpsNoImpl.CompressAndWriteGzipFile(fileName, data, dirName)
	// Check if the file exists
	filePath = dirName + "/" + fileName
	if _, err := os.Stat(filePath); !os.IsNotExist(err) {
		t.Fatalf("File %s does not exist", filePath)
	}
}

func TestFilterResults(t *testing.T) {
	results := []ResultsMap{
		{
			Name:  "test",
			Path:  "test",
			Score: 2,
		}, {
			Name:  "test2",
			Path:  "test2",
			Score: 1,
		},
	}

	filtered := FilterResults(results, IsAboveBaseline)

	if len(filtered) != 1 {
		t.Errorf("FilterResults().len(filtered) == %d, want 1", len(filtered))
	}

	filtered = FilterResults(results, func(x float64) bool {
		return x > 2
	})

	if len(filtered) != 0 {
		t.Errorf("FilterResults().len(filtered) == %d, want 0", len(filtered))
	}
}

func TestResetResultsMap(t *testing.T) {

	results := []ResultsMap{
		{
			Name:  "test",
			Path:  "test",
			Score: 1,
		},
	}

	ResetResultsMap(results)

	if len(results) != 1 {
		t.Errorf("ResetResultsMap().len(results) == 0, want non-zero")
	}

	if results[0].Name != "" || results[0].Score != 0 {
		t.Errorf("ResetResultsMap() left entry %v, want zero value", results[0])
	}

}

func TestAddDocumentAndRebuild(t *testing.T) {
	model := buildTestModel()

	if model.DocCount != 3 {
		t.Errorf("DocCount == %d, want 3", model.DocCount)
	}

	if len(model.Vocab) != 3 {
		t.Errorf("len(Vocab) == %d, want 3", len(model.Vocab))
	}

	if model.Matrix.Rows != 3 || model.Matrix.Cols != 3 {
		t.Errorf("Matrix shape == (%d, %d), want (3, 3)", model.Matrix.Rows, model.Matrix.Cols)
	}

	if model.DF["cat"] != 1 || model.DF["dog"] != 1 || model.DF["fish"] != 1 {
		t.Errorf("DF == %v, want 1 per term", model.DF)
	}
}

func TestRankBySimilarity(t *testing.T) {
	model := buildTestModel()

	result, count := RankBySimilarity(model, "cat")

	if count != 1 {
		t.Errorf("RankBySimilarity() count == %d, want 1", count)
	}

	if len(result) != 3 {
		t.Fatalf("RankBySimilarity().len(result) == %d, want 3", len(result))
	}

	if result[0].Name != "about-cats.txt" {
		t.Errorf("RankBySimilarity() best match == %s, want about-cats.txt", result[0].Name)
	}

	if math.Abs(result[0].Score-2) > 1e-9 {
		t.Errorf("RankBySimilarity() best score == %v, want 2", result[0].Score)
	}

	// documents sharing no terms with the query sit at the shifted baseline
	if math.Abs(result[1].Score-1) > 1e-9 || math.Abs(result[2].Score-1) > 1e-9 {
		t.Errorf("RankBySimilarity() unrelated scores == %v, %v, want 1, 1", result[1].Score, result[2].Score)
	}
}

func TestRankBySimilarityUnknownQuery(t *testing.T) {
	model := buildTestModel()

	result, count := RankBySimilarity(model, "zebra")

	if count != 0 {
		t.Errorf("RankBySimilarity() count == %d, want 0 for an out of vocabulary query", count)
	}

	filtered := FilterResults(result, IsAboveBaseline)
	if len(filtered) != 0 {
		t.Errorf("FilterResults().len(filtered) == %d, want 0", len(filtered))
	}
}

func TestSaveAndLoadCache(t *testing.T) {
	model := buildTestModel()
	model.Name = "animals"

	dirName := "testcache"
	if err := SaveModelToCache(model, dirName, FileOpsImpl{}); err != nil {
		t.Fatalf("Failed to save model cache: %v", err)
	}

	loaded := NewEmptyModel()
	if err := LoadCachedGobToModel(dirName, loaded); err != nil {
		t.Fatalf("Failed to load model cache: %v", err)
	}

	if loaded.Name != "animals" || loaded.DocCount != 3 {
		t.Errorf("LoadCachedGobToModel() Name == %s, DocCount == %d, want animals, 3", loaded.Name, loaded.DocCount)
	}

	if !loaded.IsComplete {
		t.Error("LoadCachedGobToModel() did not mark the model complete")
	}

	result, _ := RankBySimilarity(loaded, "dog")
	if result[0].Name != "about-dogs.txt" {
		t.Errorf("RankBySimilarity() on reloaded model best match == %s, want about-dogs.txt", result[0].Name)
	}

	// Clean up: remove the cache file and the temporary directory
	if err := os.Remove(dirName + "/" + CacheFileName); err != nil {
		t.Fatalf("Failed to remove cache file: %v", err)
	}
	if err := os.Remove(dirName); err != nil {
		t.Fatalf("Failed to remove temporary directory: %v", err)
	}
}

func TestLoadCachedGobToModelMissingCache(t *testing.T) {
	model := NewEmptyModel()

	if err := LoadCachedGobToModel("no-such-directory", model); err == nil {
		t.Error("LoadCachedGobToModel() == nil, want an error for a missing cache")
	}

	if model.IsComplete {
		t.Error("LoadCachedGobToModel() marked the model complete after a failed load")
	}
}

func TestResetModel(t *testing.T) {
	model := buildTestModel()

	ResetModel(model)

	if model.DocCount != 0 || model.TermCount != 0 || len(model.Docs) != 0 {
		t.Error("ResetModel() left document state behind")
	}
	if model.Matrix != nil || model.Vocab != nil {
		t.Error("ResetModel() left matrix state behind")
	}
	if model.IsComplete {
		t.Error("ResetModel() left IsComplete set")
	}
}
