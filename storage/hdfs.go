package storage

import (
	"fmt"
	"log"
	"os"
	"path"

	// NoSQL: module containing HDFS api client
	"github.com/colinmarc/hdfs/v2"
)

const root = "/collab/projects"

// FileStorage keeps project attachments on HDFS under
// /collab/projects/<projectID>/<name>.
type FileStorage struct {
	client *hdfs.Client
	logger *log.Logger
}

func New(logger *log.Logger) (*FileStorage, error) {
	uri := os.Getenv("HDFS_URI")
	if uri == "" {
		return nil, fmt.Errorf("HDFS_URI environment variable is not set")
	}

	client, err := hdfs.New(uri)
	if err != nil {
		logger.Println("Error connecting to HDFS:", err)
		return nil, err
	}

	return &FileStorage{client: client, logger: logger}, nil
}

func (fs *FileStorage) Close() {
	fs.client.Close()
}

func (fs *FileStorage) CreateDirectories() error {
	err := fs.client.MkdirAll(root, 0755)
	if err != nil {
		fs.logger.Println("Error creating directory tree:", err)
	}
	return err
}

func projectDir(projectID string) string {
	return path.Join(root, projectID)
}

func (fs *FileStorage) Save(projectID, name string, content []byte) error {
	dir := projectDir(projectID)
	if err := fs.client.MkdirAll(dir, 0755); err != nil {
		fs.logger.Println("Error creating project directory:", err)
		return err
	}

	filePath := path.Join(dir, name)
	_ = fs.client.Remove(filePath)

	file, err := fs.client.Create(filePath)
	if err != nil {
		fs.logger.Println("Error creating file on HDFS:", err)
		return err
	}

	if _, err := file.Write(content); err != nil {
		fs.logger.Println("Error writing file to HDFS:", err)
		file.Close()
		return err
	}
	return file.Close()
}

func (fs *FileStorage) Read(projectID, name string) ([]byte, error) {
	content, err := fs.client.ReadFile(path.Join(projectDir(projectID), name))
	if err != nil {
		fs.logger.Println("Error reading file from HDFS:", err)
		return nil, err
	}
	return content, nil
}

func (fs *FileStorage) List(projectID string) ([]string, error) {
	entries, err := fs.client.ReadDir(projectDir(projectID))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		fs.logger.Println("Error listing project directory:", err)
		return nil, err
	}

	names := []string{}
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func (fs *FileStorage) Remove(projectID, name string) error {
	err := fs.client.Remove(path.Join(projectDir(projectID), name))
	if err != nil {
		fs.logger.Println("Error removing file from HDFS:", err)
	}
	return err
}

// RemoveProject deletes the whole attachment directory as part of the
// project delete cascade.
func (fs *FileStorage) RemoveProject(projectID string) error {
	err := fs.client.Remove(projectDir(projectID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		fs.logger.Println("Error removing project directory from HDFS:", err)
	}
	return err
}
