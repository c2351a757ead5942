package consts

const (
	OpenAIBaseURL = "https://api.openai.com/v1/"
)

// RequestIDKey is the gin context key and log field of the request id.
const RequestIDKey = "request_id"

const RequestIDHeader = "X-Request-Id"

type ModelSupplier string

const (
	OpenAI ModelSupplier = "openai"
)

func (m ModelSupplier) String() string {
	return string(m)
}

func (m ModelSupplier) BaseURL() string {
	switch m {
	case OpenAI:
		return OpenAIBaseURL
	default:
		return ""
	}
}

type Model string

const (
	GPTImage1 Model = "gpt-image-1"
)

func (m Model) String() string {
	return string(m)
}

// EditOutcome labels the result of one edit request for metrics and logs.
type EditOutcome string

const (
	OutcomeSuccess      EditOutcome = "success"
	OutcomeInvalid      EditOutcome = "invalid"
	OutcomeUnconfigured EditOutcome = "unconfigured"
	OutcomeEmpty        EditOutcome = "empty"
	OutcomeFailed       EditOutcome = "failed"
)

func (o EditOutcome) String() string {
	return string(o)
}
