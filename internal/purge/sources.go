package purge

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const (
	listFileCommentPrefixConstant         = "#"
	batchConfigNotFoundTemplateConstant   = "configuration file not found: %s"
	batchConfigReadErrorTemplateConstant  = "failed to read configuration file %s: %w"
	batchConfigParseErrorTemplateConstant = "failed to parse configuration file %s: %w"
	listFileNotFoundTemplateConstant      = "repository list file not found: %s"
	listFileOpenErrorTemplateConstant     = "failed to open repository list file %s: %w"
	listFileScanErrorTemplateConstant     = "failed to read repository list file %s: %w"
)

// BatchConfig models the optional JSON batch description file.
type BatchConfig struct {
	Username     string   `json:"username"`
	Repositories []string `json:"repositories"`
}

// LoadBatchConfig reads and decodes the JSON batch file at the given path.
func LoadBatchConfig(configPath string) (BatchConfig, error) {
	rawContent, readError := os.ReadFile(configPath)
	if readError != nil {
		if os.IsNotExist(readError) {
			return BatchConfig{}, fmt.Errorf(batchConfigNotFoundTemplateConstant, configPath)
		}
		return BatchConfig{}, fmt.Errorf(batchConfigReadErrorTemplateConstant, configPath, readError)
	}

	var decodedConfig BatchConfig
	if decodeError := json.Unmarshal(rawContent, &decodedConfig); decodeError != nil {
		return BatchConfig{}, fmt.Errorf(batchConfigParseErrorTemplateConstant, configPath, decodeError)
	}

	return decodedConfig, nil
}

// LoadRepositoryListFile reads a plain-text repository list, skipping blank
// lines and comment lines starting with "#".
func LoadRepositoryListFile(listPath string) ([]string, error) {
	listFile, openError := os.Open(listPath)
	if openError != nil {
		if os.IsNotExist(openError) {
			return nil, fmt.Errorf(listFileNotFoundTemplateConstant, listPath)
		}
		return nil, fmt.Errorf(listFileOpenErrorTemplateConstant, listPath, openError)
	}
	defer listFile.Close()

	repositories := []string{}
	lineScanner := bufio.NewScanner(listFile)
	for lineScanner.Scan() {
		trimmedLine := strings.TrimSpace(lineScanner.Text())
		if len(trimmedLine) == 0 || strings.HasPrefix(trimmedLine, listFileCommentPrefixConstant) {
			continue
		}
		repositories = append(repositories, trimmedLine)
	}
	if scanError := lineScanner.Err(); scanError != nil {
		return nil, fmt.Errorf(listFileScanErrorTemplateConstant, listPath, scanError)
	}

	return repositories, nil
}
