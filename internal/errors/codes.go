package errors

// Error codes for the BLIF toolchain
// These codes are used in error messages and editor diagnostics
// to provide consistent error identification across the tools.
//
// Error code ranges:
// E0100-E0199: Parser errors
// E0900-E0999: Tooling errors (I/O)

const (
	// E0100: A statement keyword other than the expected one was found
	ErrorExpectedKeyword = "E0100"

	// E0101: A mandatory positional field is missing
	ErrorMissingField = "E0101"

	// E0102: Truth-table character other than 0 or 1
	ErrorInvalidBit = "E0102"

	// E0103: Truth-table row width differs from the LUT input count
	ErrorRowWidth = "E0103"

	// E0104: Latch initial value 1
	ErrorLatchInitOne = "E0104"

	// E0105: Subcircuit connection without '='
	ErrorMalformedConnection = "E0105"

	// E0106: Model body not terminated by .end
	ErrorMissingEnd = "E0106"

	// E0900: Source file could not be read
	ErrorReadFile = "E0900"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorExpectedKeyword:
		return "Statement does not start with the expected keyword"
	case ErrorMissingField:
		return "Statement is missing a required field"
	case ErrorInvalidBit:
		return "Truth-table entries must be 0 or 1"
	case ErrorRowWidth:
		return "Truth-table row width does not match the number of LUT inputs"
	case ErrorLatchInitOne:
		return "Latch initial value 1 is not supported"
	case ErrorMalformedConnection:
		return "Subcircuit connection is not of the form formal=actual"
	case ErrorMissingEnd:
		return "Model is not terminated by .end"
	case ErrorReadFile:
		return "Source file could not be read"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
