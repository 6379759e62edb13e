package model

// Language identifies the vocabulary and user-facing message locale of a
// resolution. The vault is bilingual: French and Brazilian Portuguese.
type Language string

const (
	LangFR Language = "fr"
	LangPT Language = "pt"
)

// ParseLanguage normalises a language tag. Unknown values fall back to French,
// the vault's primary locale.
func ParseLanguage(v string) Language {
	if Language(v) == LangPT {
		return LangPT
	}
	return LangFR
}

// ActionKind is the closed set of actions a voice command can request.
type ActionKind string

const (
	ActionDisplay  ActionKind = "display"
	ActionDownload ActionKind = "download"
	ActionEdit     ActionKind = "edit"
	ActionSend     ActionKind = "send"
)

// ParseActionKind validates v against the closed action set.
func ParseActionKind(v string) (ActionKind, bool) {
	switch ActionKind(v) {
	case ActionDisplay, ActionDownload, ActionEdit, ActionSend:
		return ActionKind(v), true
	}
	return "", false
}

// ActionKinds lists the closed action set in declaration order.
func ActionKinds() []ActionKind {
	return []ActionKind{ActionDisplay, ActionDownload, ActionEdit, ActionSend}
}

// DocumentTag is the closed set of abstract document types the engine can
// resolve. The vault package maps tags to concrete document IDs.
type DocumentTag string

const (
	DocCV                     DocumentTag = "cv"
	DocLetter                 DocumentTag = "letter"
	DocBenefitAccount         DocumentTag = "benefit_account"
	DocCertificate            DocumentTag = "certificate"
	DocEmploymentRegistration DocumentTag = "employment_registration"
)

// ParseDocumentTag validates v against the closed document set.
func ParseDocumentTag(v string) (DocumentTag, bool) {
	switch DocumentTag(v) {
	case DocCV, DocLetter, DocBenefitAccount, DocCertificate, DocEmploymentRegistration:
		return DocumentTag(v), true
	}
	return "", false
}

// DocumentTags lists the closed document set in declaration order.
func DocumentTags() []DocumentTag {
	return []DocumentTag{DocCV, DocLetter, DocBenefitAccount, DocCertificate, DocEmploymentRegistration}
}

// LocalResolution is the keyword scorer's verdict for one transcript.
// Empty Action/DocType mean no category matched. Understood holds only when
// both categories matched and Confidence reached the acceptance threshold.
type LocalResolution struct {
	Action     ActionKind
	DocType    DocumentTag
	Confidence int
	Understood bool
}

// RemoteResolution is the validated answer of the remote inference service.
// Anything off-contract (malformed body, values outside the closed sets)
// arrives here as Understood=false with a locale-appropriate message.
type RemoteResolution struct {
	Action     ActionKind
	DocType    DocumentTag
	Message    string
	Understood bool
}

// UnresolvedReason distinguishes why a command could not be resolved.
type UnresolvedReason string

const (
	ReasonNotUnderstood     UnresolvedReason = "not_understood"
	ReasonQuotaExceeded     UnresolvedReason = "quota_exceeded"
	ReasonRemoteUnavailable UnresolvedReason = "remote_unavailable"
)

// ResolvedCommand is the orchestrator's final outcome for one transcript.
// When Understood is true, Action and DocType carry the command; otherwise
// Reason and Message explain the failure. Created fresh per resolution and
// never mutated afterwards.
type ResolvedCommand struct {
	Understood bool
	Action     ActionKind
	DocType    DocumentTag
	Reason     UnresolvedReason
	Message    string
	UsedRemote bool
}

// Understood builds a successful outcome.
func Understood(action ActionKind, doc DocumentTag, usedRemote bool) ResolvedCommand {
	return ResolvedCommand{
		Understood: true,
		Action:     action,
		DocType:    doc,
		UsedRemote: usedRemote,
	}
}

// Unresolved builds a failure outcome with the given reason and message.
func Unresolved(reason UnresolvedReason, message string, usedRemote bool) ResolvedCommand {
	return ResolvedCommand{
		Reason:     reason,
		Message:    message,
		UsedRemote: usedRemote,
	}
}
