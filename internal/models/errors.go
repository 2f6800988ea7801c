package models

import "errors"

// ErrSeedConflict marks a duplicate role/permission/user name during
// provisioning. The seed batch treats it as fatal and rolls back.
var ErrSeedConflict = errors.New("seed catalog conflict: duplicate entry")
