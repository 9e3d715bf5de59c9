package store

import (
	"encoding/json"
	"fmt"
	"os"
)

func readJSONFile[T any](path string) (T, error) {
	var result T

	file, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := json.NewDecoder(file).Decode(&result); err != nil {
		return result, fmt.Errorf("json.NewDecoder().Decode() > %w", err)
	}
	return result, nil
}

func writeJSONFile[T any](path string, data T) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("json.NewEncoder().Encode() > %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	contents, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("os.ReadFile(%s) > %w", src, err)
	}
	if err := os.WriteFile(dst, contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", dst, err)
	}
	return nil
}
