package config

// SchemaVersion is the only config file version understood by the loader.
const SchemaVersion = "1"

// Nbuildfile represents the structure of the nbuild.yaml / nbuild.toml file.
type Nbuildfile struct {
	Version          string            `yaml:"version" toml:"version"`
	Tool             string            `yaml:"tool" toml:"tool"`
	ToolVersion      string            `yaml:"toolVersion" toml:"toolVersion"`
	BaseDir          string            `yaml:"baseDir" toml:"baseDir"`
	Platform         string            `yaml:"platform" toml:"platform"`
	Architecture     string            `yaml:"architecture" toml:"architecture"`
	Configuration    string            `yaml:"configuration" toml:"configuration"`
	Output           string            `yaml:"output" toml:"output"`
	CacheDir         string            `yaml:"cacheDir" toml:"cacheDir"`
	OverrideCacheDir bool              `yaml:"overrideCacheDir" toml:"overrideCacheDir"`
	LinkStatic       bool              `yaml:"linkStatic" toml:"linkStatic"`
	CompilerFlags    string            `yaml:"compilerFlags" toml:"compilerFlags"`
	LinkerFlags      string            `yaml:"linkerFlags" toml:"linkerFlags"`
	Plugin           string            `yaml:"plugin" toml:"plugin"`
	Includes         []string          `yaml:"includes" toml:"includes"`
	Libraries        []string          `yaml:"libraries" toml:"libraries"`
	BaselibDir       string            `yaml:"baselibDir" toml:"baselibDir"`
	ExtraArgs        []string          `yaml:"extraArgs" toml:"extraArgs"`
	Environment      map[string]string `yaml:"environment" toml:"environment"`
}
