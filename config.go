package spirvval

import (
	"github.com/streamkit/spirvval/api"
	"github.com/streamkit/spirvval/internal/validate"
	"github.com/streamkit/spirvval/spirv"
)

// Config controls validation behavior, with the default implementation as
// NewConfig.
type Config struct {
	targetEnv api.TargetEnv
	scopes    spirv.ScopeValidator
	haltFirst bool
}

// NewConfig validates against the Universal target environment with the
// built-in scope validator, reporting every diagnostic found.
func NewConfig() *Config {
	return &Config{
		targetEnv: api.TargetEnvUniversal,
		scopes:    validate.StdScopes{},
	}
}

// clone ensures all fields are copied even when a new one is added.
func (c *Config) clone() *Config {
	return &Config{
		targetEnv: c.targetEnv,
		scopes:    c.scopes,
		haltFirst: c.haltFirst,
	}
}

// WithTargetEnv sets the target environment the module is validated for.
// Vulkan-family environments add storage-class and scope restrictions.
func (c *Config) WithTargetEnv(env api.TargetEnv) *Config {
	ret := c.clone()
	ret.targetEnv = env
	return ret
}

// WithScopeValidator replaces the built-in scope validator. Pipelines that
// carry a complete scope rule set plug it in here; nil restores the default.
func (c *Config) WithScopeValidator(v spirv.ScopeValidator) *Config {
	if v == nil {
		v = validate.StdScopes{}
	}
	ret := c.clone()
	ret.scopes = v
	return ret
}

// WithHaltOnFirstError stops validation at the first diagnostic instead of
// collecting the full report. Deferred constraints registered before the halt
// are still discarded with the run.
func (c *Config) WithHaltOnFirstError(enabled bool) *Config {
	ret := c.clone()
	ret.haltFirst = enabled
	return ret
}
