// Package core runs the network log and spreadsheet conversion tools.
//
// It sits between the transports (HTTP handlers, the CLI) and the engines
// that do the work: field extraction, LLDP parsing, table extraction and
// diffing, sheet writing and SecureCRT session rendering. Nothing here knows
// about HTTP.
//
// # Jobs
//
// Every [Service] operation runs as one job. A job takes a slot from the
// [JobLimiter], gets a job id (reused from the context when the caller set
// one), runs inside an OpenTelemetry span and logs its outcome with the id:
//
//	res, err := svc.LLDP(ctx, core.LLDPRequest{
//	    Mode:        core.LLDPOUI,
//	    Files:       files,
//	    StripPrefix: core.DefaultOUIStripPrefix,
//	    AutoDetect:  true,
//	})
//
// Uploaded .zip archives are expanded into their .log and .txt entries.
// Text is decoded leniently ([DecodeText]); a bad byte never fails a job.
//
// # Outputs
//
// Results render to rows for previews and to an [Output] (a named file with
// a content type) for download.
//
// # Error Handling
//
// Operations return sentinel errors wrapped with context. [MapError] turns
// any error into a [UserMessage] with a support code:
//
//   - FILE001-FILE005: upload size, workbook format, missing files
//   - VAL001-VAL005: IP ranges, labels, sheet names, modes
//   - JOB001-JOB003: busy, cancelled, timed out
//   - RATE001: rate limited
//
// Missing fields, malformed rows and unreadable archive entries are data,
// not errors: they render as the not-found text or are skipped and logged.
package core
