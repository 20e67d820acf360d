package htmlchop

// Warning codes for recoverable problems. None of these abort a run.
const (
	WarnNoSections          = "no_sections"
	WarnMissingAsset        = "missing_asset"
	WarnWriteFailure        = "write_failure"
	WarnDuplicateIdentifier = "duplicate_identifier"
	WarnMissingSubsectionID = "missing_subsection_id"
)

// Warning reports a recoverable problem encountered during a run.
type Warning struct {
	Code    string
	Message string
}
