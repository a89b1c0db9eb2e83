package openaicompat

import "time"

// DefaultTimeout is the default HTTP client timeout
const DefaultTimeout = 30 * time.Second

// Preset is the base URL and default model of a known vendor.
type Preset struct {
	BaseURL string
	Model   string
}

// Presets lists the vendors that speak the chat completions protocol.
var Presets = map[string]Preset{
	"openai":   {BaseURL: "https://api.openai.com/v1", Model: "gpt-4o-mini"},
	"qwen":     {BaseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", Model: "qwen-plus"},
	"deepseek": {BaseURL: "https://api.deepseek.com/v1", Model: "deepseek-chat"},
}
