package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/diillson/aws-bill-analyzer-go/internal/domain/repository"
	"github.com/diillson/aws-bill-analyzer-go/internal/shared/types"
	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

type decodeFunc func(data []byte, v any) error

// decoders mapeia a extensão do arquivo para o formato correspondente.
var decoders = map[string]struct {
	format string
	decode decodeFunc
}{
	".toml": {"TOML", decodeTOML},
	".yaml": {"YAML", yaml.Unmarshal},
	".yml":  {"YAML", yaml.Unmarshal},
	".json": {"JSON", json.Unmarshal},
}

// ConfigRepositoryImpl carrega filtros, período e opções de relatório de um arquivo.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	decoder, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedConfigFormat, ext)
	}

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg types.Config
	if err := decoder.decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing %s file %s: %w", decoder.format, filePath, err)
	}

	cfg.ReportName = strings.TrimSpace(cfg.ReportName)
	cfg.CostThreshold = types.Amount(strings.TrimSpace(string(cfg.CostThreshold)))
	if cfg.CostThreshold != "" {
		if _, err := cfg.CostThreshold.Decimal(); err != nil {
			return nil, fmt.Errorf("invalid cost_threshold in %s: %w", filePath, err)
		}
	}

	return &cfg, nil
}

// decodeTOML aceita cost_threshold como número ou string. O go-toml só
// converte strings para campos string, então números viram texto antes do
// unmarshal.
func decodeTOML(data []byte, v any) error {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return err
	}

	switch n := tree.Get("cost_threshold").(type) {
	case int64:
		tree.Set("cost_threshold", strconv.FormatInt(n, 10))
	case float64:
		tree.Set("cost_threshold", strconv.FormatFloat(n, 'f', -1, 64))
	}

	return tree.Unmarshal(v)
}
