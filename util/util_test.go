package util

import (
	"os"
	"testing"
)

func TestCheckDirIsValid(t *testing.T) {
	dirName := "testvalid"

	if err := os.Mkdir(dirName, 0755); err != nil {
		t.Fatalf("Failed to create temporary directory: %v", err)
	}

	valid, err := CheckDirIsValid(dirName)
	if err != nil {
		t.Errorf("CheckDirIsValid() err == %v, want nil", err)
	}
	if !valid {
		t.Errorf("CheckDirIsValid() == false, want true for an existing directory")
	}

	if err := os.Remove(dirName); err != nil {
		t.Fatalf("Failed to remove temporary directory: %v", err)
	}

	valid, err = CheckDirIsValid(dirName)
	if err != nil {
		t.Errorf("CheckDirIsValid() err == %v, want nil", err)
	}
	if valid {
		t.Errorf("CheckDirIsValid() == true, want false for a missing directory")
	}
}

func TestGetDirLength(t *testing.T) {
	dirName := "testlength"

	if err := os.Mkdir(dirName, 0755); err != nil {
		t.Fatalf("Failed to create temporary directory: %v", err)
	}

	fileNames := []string{"a.txt", "b.txt", "c.txt"}
	for _, name := range fileNames {
		if err := os.WriteFile(dirName+"/"+name, []byte("cat dog"), 0644); err != nil {
			t.Fatalf("Failed to create temporary file: %v", err)
		}
	}

	if got := GetDirLength(dirName); got != 3 {
		t.Errorf("GetDirLength() == %d, want 3", got)
	}

	// Clean up: remove the files and the temporary directory
	for _, name := range fileNames {
		if err := os.Remove(dirName + "/" + name); err != nil {
			t.Fatalf("Failed to remove temporary file: %v", err)
		}
	}
	if err := os.Remove(dirName); err != nil {
		t.Fatalf("Failed to remove temporary directory: %v", err)
	}
}

func TestMapToJSONGeneric(t *testing.T) {
	m := map[string]interface{}{
		"about-cats.txt": 2.0,
	}

	got := MapToJSONGeneric(m, false, "")

	expected := `{"about-cats.txt":2}`
	if got != expected {
		t.Errorf("MapToJSONGeneric() == %s, want %s", got, expected)
	}

	if got := MapToJSONGeneric(map[string]interface{}{}, false, ""); got != "" {
		t.Errorf("MapToJSONGeneric() == %s, want empty string for an empty map", got)
	}
}
