package utils

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// WriteFile writes data to filepath, creating parent directories as needed.
// Byte slices are written as is, anything else is stored as JSON.
func WriteFile(path string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		logrus.Error(err)
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		logrus.Error(err)
		return err
	}
	defer f.Close()

	switch v := data.(type) {
	case []byte:
		if _, err = f.Write(v); err != nil {
			logrus.Error(err)
			return err
		}
	default:
		jData, err := json.Marshal(v)
		if err != nil {
			logrus.Error(err)
			return err
		}
		if _, err = f.Write(jData); err != nil {
			logrus.Error(err)
			return err
		}
	}

	return nil
}
