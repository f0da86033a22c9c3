package domain

// SourceFileType identifies the declared format of an uploaded complaint file.
type SourceFileType string

const (
	SourcePDF         SourceFileType = "PDF"
	SourceCSV         SourceFileType = "CSV"
	SourceSpreadsheet SourceFileType = "SPREADSHEET"
)

// AllowedExtensions maps file extensions (without dot) to SourceFileType.
var AllowedExtensions = map[string]SourceFileType{
	"pdf":  SourcePDF,
	"csv":  SourceCSV,
	"xlsx": SourceSpreadsheet,
	"xls":  SourceSpreadsheet,
}

// DelayStatus classifies the gap between incident and complaint dates.
type DelayStatus string

const (
	DelayStatusDelayed DelayStatus = "DELAYED"
	DelayStatusOnTime  DelayStatus = "ON_TIME"
	DelayStatusUnknown DelayStatus = "UNKNOWN"
)

// TransactionPattern classifies the shape of a complaint's money movement.
type TransactionPattern string

const (
	PatternSingleLarge   TransactionPattern = "SINGLE_LARGE"
	PatternMultipleSmall TransactionPattern = "MULTIPLE_SMALL"
	PatternMixed         TransactionPattern = "MIXED"
	PatternNone          TransactionPattern = "NONE"
)

// ResultStatus is the terminal status of one record through the pipeline.
type ResultStatus string

const (
	StatusAccepted  ResultStatus = "ACCEPTED"
	StatusDuplicate ResultStatus = "DUPLICATE"
	StatusRejected  ResultStatus = "REJECTED"
)
