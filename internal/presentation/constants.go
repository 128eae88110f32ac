package presentation

const (
	TTag      = "t"
	AuthKey   = "Authorization"
	ExpTag    = "expiration"
	ReasonTag = "X-Reason"

	AdminAction = "admin"
	AuthKind    = 24242

	BearerPrefix = "Bearer "
	NostrPrefix  = "Nostr "

	KeyLocalizer = "localizer"
	KeyIdentity  = "identity"

	LangParam    = "lang"
	ConfirmParam = "confirm"
	BucketParam  = "bucket"
	KindParam    = "kind"
	IDParam      = "id"
	TypeParam    = "type"
	URLParam     = "url"
	SectionParam = "section"
	ActiveParam  = "active"
)
