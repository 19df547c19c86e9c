package extract

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RuleFile is the on-disk form of a pattern override file:
//
//	fields:
//	  sysname:
//	    - 'SysName\s*:\s*(.+)'
//	noise:
//	  blacklist: [not-advertised, sep, up]
//	  month_filter: true
//
// Fields listed here replace the built-in list for that field; fields not
// listed keep their defaults.
type RuleFile struct {
	Fields map[string][]string `yaml:"fields"`
	Noise  NoiseRules          `yaml:"noise"`
}

// NoiseRules configures the LLDP neighbor-name noise filter.
// A nil Blacklist or MonthFilter keeps the built-in behaviour.
type NoiseRules struct {
	Blacklist   []string `yaml:"blacklist"`
	MonthFilter *bool    `yaml:"month_filter"`
}

// LoadRuleFile reads and parses a YAML rule file.
func LoadRuleFile(path string) (*RuleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule file: %w", err)
	}
	return ParseRuleFile(data)
}

// ParseRuleFile parses YAML rule file contents.
func ParseRuleFile(data []byte) (*RuleFile, error) {
	var rf RuleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse rule file: %w", err)
	}
	return &rf, nil
}

// PatternSet compiles the built-in definitions overlaid with the file's
// field lists.
func (rf *RuleFile) PatternSet() (*PatternSet, error) {
	defs := DefaultDefinitions()
	if rf != nil {
		for field, exprs := range rf.Fields {
			defs[field] = exprs
		}
	}
	return NewPatternSet(defs)
}
