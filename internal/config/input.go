package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/rpgo/rd-calculator/internal/calculation"
	"github.com/rpgo/rd-calculator/internal/domain"
	rdmoney "github.com/rpgo/rd-calculator/pkg/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML, JSON or HCL file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".hcl":
		if err := hclsimple.Decode(filename, data, nil, &config); err != nil {
			return nil, fmt.Errorf("failed to parse HCL: %w", err)
		}
	default:
		// JSON is a subset of YAML
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Currency != "" && rdmoney.LookupCurrency(config.Currency).Code != strings.ToUpper(strings.TrimSpace(config.Currency)) {
		return fmt.Errorf("unknown currency %q", config.Currency)
	}

	if len(config.Plans) == 0 {
		return fmt.Errorf("no plans provided")
	}

	seen := make(map[string]bool, len(config.Plans))
	for i, plan := range config.Plans {
		if err := ip.validatePlan(&plan); err != nil {
			return fmt.Errorf("plan %d validation failed: %w", i, err)
		}
		if seen[planKey(plan.Name)] {
			return fmt.Errorf("duplicate plan name %q", plan.Name)
		}
		seen[planKey(plan.Name)] = true
	}

	if config.DefaultPlan != "" && !seen[planKey(config.DefaultPlan)] {
		return fmt.Errorf("default plan %q is not defined", config.DefaultPlan)
	}

	if config.Logging != nil {
		switch strings.ToLower(config.Logging.Format) {
		case "", "console", "json":
		default:
			return fmt.Errorf("logging format must be 'console' or 'json'")
		}
	}

	return nil
}

// validatePlan validates a single plan definition
func (ip *InputParser) validatePlan(plan *domain.PlanConfig) error {
	if strings.TrimSpace(plan.Name) == "" {
		return fmt.Errorf("plan name is required")
	}
	if plan.MinimumAmount < 0 {
		return fmt.Errorf("minimum amount cannot be negative")
	}
	compounding, ok := domain.CompoundingByName(plan.Compounding)
	if !ok {
		return fmt.Errorf("compounding must be 'monthly' or 'quarterly'")
	}
	if err := compounding.Validate(); err != nil {
		return err
	}
	if plan.FixedRate != nil && len(plan.Tiers) > 0 {
		return fmt.Errorf("specify either fixed_rate_percent or tiers, not both")
	}
	if _, err := calculation.NewPlanFromConfig(*plan); err != nil {
		return err
	}
	return nil
}

// Plans builds the calculation plans declared in config, in file order
func Plans(config *domain.Configuration) ([]*calculation.Plan, error) {
	plans := make([]*calculation.Plan, 0, len(config.Plans))
	for _, pc := range config.Plans {
		p, err := calculation.NewPlanFromConfig(pc)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}

// ResolvePlan picks a plan by name from config, falling back to the built-in
// presets. An empty name selects the configured default plan.
func ResolvePlan(config *domain.Configuration, name string) (*calculation.Plan, error) {
	if config != nil {
		want := name
		if want == "" {
			want = config.DefaultPlan
		}
		for _, pc := range config.Plans {
			if planKey(want) != "" && planKey(pc.Name) == planKey(want) {
				return calculation.NewPlanFromConfig(pc)
			}
		}
	}
	return calculation.PresetByName(name)
}

// planKey is the form plan names are compared in: case and surrounding space are ignored.
func planKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CreateExampleConfiguration returns the built-in presets as a configuration
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	config := &domain.Configuration{
		Currency:    rdmoney.DefaultCurrency,
		DefaultPlan: calculation.PresetMonthlyTiered,
		Logging:     &domain.LoggingConfig{Level: "warn", Format: "console", Output: "stderr"},
	}
	for _, p := range calculation.Presets() {
		config.Plans = append(config.Plans, calculation.PlanConfigFor(p))
	}
	return config
}

// SaveConfiguration writes config as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
