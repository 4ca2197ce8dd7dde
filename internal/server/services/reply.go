package services

import "fmt"

// ReplyKind classifies how a relay call ended.
type ReplyKind int

const (
	// ReplyOK means the downstream accepted the request.
	ReplyOK ReplyKind = iota
	// ReplyRejected means the downstream answered with a non-zero code.
	ReplyRejected
	// ReplyRequestFailed means the downstream could not be reached or its
	// answer could not be understood.
	ReplyRequestFailed
	// ReplyInvalidCredential means the transport credential did not decode.
	ReplyInvalidCredential
	// ReplyMisconfigured means the relay could not load its own key material.
	ReplyMisconfigured
)

func (k ReplyKind) String() string {
	switch k {
	case ReplyOK:
		return "ok"
	case ReplyRejected:
		return "rejected"
	case ReplyRequestFailed:
		return "request_failed"
	case ReplyInvalidCredential:
		return "invalid_credential"
	case ReplyMisconfigured:
		return "misconfigured"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

const (
	defaultAnswer           = "No answer returned."
	invalidCredentialAnswer = "Error: invalid credential encoding"
	misconfiguredAnswer     = "Error: server misconfiguration"
)

// Reply is the outcome of one relay call. Text is what goes back to the
// RPC caller; Kind and Code are kept for logging and metrics.
type Reply struct {
	Kind ReplyKind
	Code int
	Text string
}

func okReply(text string) Reply {
	return Reply{Kind: ReplyOK, Text: text}
}

func rejectedReply(prefix string, code int, message string) Reply {
	return Reply{Kind: ReplyRejected, Code: code, Text: fmt.Sprintf("%s %d: %s", prefix, code, message)}
}

func failedReply(prefix string, err error) Reply {
	return Reply{Kind: ReplyRequestFailed, Text: fmt.Sprintf("%s: %v", prefix, err)}
}
