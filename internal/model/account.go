package model

// SchemaVersion is stamped on persisted directories. The browser-era
// blobs carried no version; readers treat a missing version as current.
const SchemaVersion = 1

// Account pairs a credential with its owner's progress data.
// The password hash is an opaque digest; the plaintext is never stored.
type Account struct {
	PasswordHash string          `json:"password_hash"`
	Data         *ProgressRecord `json:"data"`
}

// Directory is the root persisted object: every account, the single
// current-user pointer, and the anonymous progress slot used when no
// user is signed in. The directory exclusively owns all progress
// records; they have no existence outside it.
type Directory struct {
	SchemaVersion int                 `json:"schema_version"`
	Accounts      map[string]*Account `json:"accounts"`
	CurrentUser   string              `json:"current_user,omitempty"`
	Anonymous     *ProgressRecord     `json:"anonymous,omitempty"`
}

// NewDirectory returns a fresh empty directory with nobody signed in
func NewDirectory() *Directory {
	return &Directory{
		SchemaVersion: SchemaVersion,
		Accounts:      map[string]*Account{},
	}
}

// Normalize repairs a freshly decoded directory: nil maps, nil progress
// records and stale current-user pointers (account deleted out from
// under the pointer) are all fixed up.
func (d *Directory) Normalize() {
	if d.SchemaVersion == 0 {
		d.SchemaVersion = SchemaVersion
	}
	if d.Accounts == nil {
		d.Accounts = map[string]*Account{}
	}
	for _, acc := range d.Accounts {
		if acc.Data == nil {
			acc.Data = NewProgressRecord()
		}
		acc.Data.Normalize()
	}
	if d.Anonymous != nil {
		d.Anonymous.Normalize()
	}
	if d.CurrentUser != "" {
		if _, ok := d.Accounts[d.CurrentUser]; !ok {
			d.CurrentUser = ""
		}
	}
}

// CurrentProgress returns the signed-in user's progress record, or the
// anonymous slot when nobody is signed in. Either is lazily initialized
// on first access.
func (d *Directory) CurrentProgress() *ProgressRecord {
	if d.CurrentUser == "" {
		if d.Anonymous == nil {
			d.Anonymous = NewProgressRecord()
		}
		return d.Anonymous
	}
	acc := d.Accounts[d.CurrentUser]
	if acc.Data == nil {
		acc.Data = NewProgressRecord()
	}
	return acc.Data
}
