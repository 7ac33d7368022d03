package platform

import (
	"github.com/mouse-blink/shadower/internal/domain"
	m "github.com/mouse-blink/shadower/internal/model"
)

// UserManagerType identifies UserManager in the shadow registry.
const UserManagerType m.TypeID = "android.os.UserManager"

// PermissionManageUsers guards queries about other users' profiles.
const PermissionManageUsers = "android.permission.MANAGE_USERS"

// UserHandle identifies a user on the device.
type UserHandle int

// Well-known user handles.
const (
	SystemUser UserHandle = 0
	NoUser     UserHandle = -10000
)

// UserInfo describes a user known to the device.
type UserInfo struct {
	ID   UserHandle
	Name string
}

// Bundle is a set of keyed values such as restrictions.
type Bundle map[string]any

// Bool returns the boolean stored under key, or false.
func (b Bundle) Bool(key string) bool {
	v, _ := b[key].(bool)
	return v
}

// Context is the application context a UserManager is created with.
type Context interface {
	PackageName() string
	CheckPermission(permission string) bool
}

// StaticContext is a Context with a fixed set of granted permissions.
type StaticContext struct {
	Package string
	Granted []string
}

// PackageName implements Context.
func (c StaticContext) PackageName() string { return c.Package }

// CheckPermission implements Context.
func (c StaticContext) CheckPermission(permission string) bool {
	for _, p := range c.Granted {
		if p == permission {
			return true
		}
	}

	return false
}

// UserManager method signatures.
var (
	SigGetApplicationRestrictions = m.Sig("getApplicationRestrictions", "String")
	SigGetUserProfiles            = m.Sig("getUserProfiles")
	SigIsUserUnlocked             = m.Sig("isUserUnlocked")
	SigIsManagedProfile           = m.Sig("isManagedProfile")
	SigHasUserRestriction         = m.Sig("hasUserRestriction", "String", "UserHandle")
	SigGetUserRestrictions        = m.Sig("getUserRestrictions", "UserHandle")
	SigGetSerialNumberForUser     = m.Sig("getSerialNumberForUser", "UserHandle")
	SigGetUserForSerialNumber     = m.Sig("getUserForSerialNumber", "long")
	SigIsDemoUser                 = m.Sig("isDemoUser")
	SigIsUserRunning              = m.Sig("isUserRunning", "UserHandle")
	SigIsUserRunningOrStopping    = m.Sig("isUserRunningOrStopping", "UserHandle")
	SigGetUsers                   = m.Sig("getUsers")
)

// UserManager answers questions about users and profiles on the device.
// Without a shadow it can only describe the current user.
type UserManager struct {
	ic  *domain.InterceptionContext
	ctx Context
}

// NewUserManager creates a UserManager for ctx.
func NewUserManager(s *domain.Session, ctx Context) (*UserManager, error) {
	um := &UserManager{}

	ic, err := domain.Bind(s, um, UserManagerType, ctx)
	if err != nil {
		return nil, err
	}

	um.ic = ic
	if ic.Shadowed() {
		return um, nil
	}

	um.ctx = ctx

	return um, nil
}

// Interception exposes the bound context to shadow accessors.
func (um *UserManager) Interception() *domain.InterceptionContext { return um.ic }

// ApplicationRestrictions returns the restrictions set for packageName.
func (um *UserManager) ApplicationRestrictions(packageName string) (Bundle, error) {
	return domain.Call(um.ic, SigGetApplicationRestrictions, func() (Bundle, error) {
		return nil, unsupported(SigGetApplicationRestrictions.Name)
	}, packageName)
}

// UserProfiles lists the profiles of the calling user.
func (um *UserManager) UserProfiles() ([]UserHandle, error) {
	return domain.Call(um.ic, SigGetUserProfiles, func() ([]UserHandle, error) {
		return []UserHandle{SystemUser}, nil
	})
}

// IsUserUnlocked reports whether the calling user's storage is unlocked.
func (um *UserManager) IsUserUnlocked() (bool, error) {
	return domain.Call(um.ic, SigIsUserUnlocked, func() (bool, error) {
		return true, nil
	})
}

// IsManagedProfile reports whether the calling user is a managed profile.
func (um *UserManager) IsManagedProfile() (bool, error) {
	return domain.Call(um.ic, SigIsManagedProfile, func() (bool, error) {
		return false, nil
	})
}

// HasUserRestriction reports whether key is restricted for user.
func (um *UserManager) HasUserRestriction(key string, user UserHandle) (bool, error) {
	return domain.Call(um.ic, SigHasUserRestriction, func() (bool, error) {
		return false, unsupported(SigHasUserRestriction.Name)
	}, key, user)
}

// UserRestrictions returns every restriction of user.
func (um *UserManager) UserRestrictions(user UserHandle) (Bundle, error) {
	return domain.Call(um.ic, SigGetUserRestrictions, func() (Bundle, error) {
		return nil, unsupported(SigGetUserRestrictions.Name)
	}, user)
}

// SerialNumberForUser returns the serial number of user, or -1.
func (um *UserManager) SerialNumberForUser(user UserHandle) (int64, error) {
	return domain.Call(um.ic, SigGetSerialNumberForUser, func() (int64, error) {
		if user == SystemUser {
			return 0, nil
		}

		return -1, nil
	}, user)
}

// UserForSerialNumber returns the user with serial, or NoUser.
func (um *UserManager) UserForSerialNumber(serial int64) (UserHandle, error) {
	return domain.Call(um.ic, SigGetUserForSerialNumber, func() (UserHandle, error) {
		if serial == 0 {
			return SystemUser, nil
		}

		return NoUser, nil
	}, serial)
}

// IsDemoUser reports whether the calling user is a demo user.
func (um *UserManager) IsDemoUser() (bool, error) {
	return domain.Call(um.ic, SigIsDemoUser, func() (bool, error) {
		return false, nil
	})
}

// IsUserRunning reports whether user is started.
func (um *UserManager) IsUserRunning(user UserHandle) (bool, error) {
	return domain.Call(um.ic, SigIsUserRunning, func() (bool, error) {
		return user == SystemUser, nil
	}, user)
}

// IsUserRunningOrStopping reports whether user is started or stopping.
func (um *UserManager) IsUserRunningOrStopping(user UserHandle) (bool, error) {
	return domain.Call(um.ic, SigIsUserRunningOrStopping, func() (bool, error) {
		return user == SystemUser, nil
	}, user)
}

// Users lists every user on the device.
func (um *UserManager) Users() ([]UserInfo, error) {
	return domain.Call(um.ic, SigGetUsers, func() ([]UserInfo, error) {
		return nil, unsupported(SigGetUsers.Name)
	})
}
