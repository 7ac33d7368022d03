package shadows

import (
	"errors"
	"fmt"

	"github.com/mouse-blink/shadower/internal/bimap"
	"github.com/mouse-blink/shadower/internal/domain"
	m "github.com/mouse-blink/shadower/internal/model"
	"github.com/mouse-blink/shadower/internal/platform"
)

// ErrSecurity is raised when a shadow enforces a permission the caller lacks.
var ErrSecurity = errors.New("security exception")

// UserState is the lifecycle state of a user.
type UserState int

// Available UserState values.
const (
	StateUnknown UserState = iota
	StateBooting
	StateRunningLocked
	StateRunningUnlocking
	StateRunningUnlocked
	StateStopping
	StateShutdown
)

// UserManagerShadow is the per-instance state of a shadowed UserManager.
type UserManagerShadow struct {
	ctx                     platform.Context
	userUnlocked            bool
	managedProfile          bool
	demoUser                bool
	enforcePermissions      bool
	userRestrictions        map[platform.UserHandle]platform.Bundle
	userProfiles            *bimap.BiMap[platform.UserHandle, int64]
	applicationRestrictions map[string]platform.Bundle
	nextUserSerial          int64
	userState               map[platform.UserHandle]UserState
}

func newUserManagerShadow() *UserManagerShadow {
	s := &UserManagerShadow{
		userUnlocked:            true,
		userRestrictions:        make(map[platform.UserHandle]platform.Bundle),
		userProfiles:            bimap.New[platform.UserHandle, int64](),
		applicationRestrictions: make(map[string]platform.Bundle),
		userState:               make(map[platform.UserHandle]UserState),
	}
	s.AddUserProfile(platform.SystemUser)

	return s
}

// UserManagerOf returns the shadow bound to um.
func UserManagerOf(um *platform.UserManager) (*UserManagerShadow, bool) {
	return domain.ShadowOf[*UserManagerShadow](um.Interception())
}

// SetApplicationRestrictions sets the bundle returned for packageName.
func (s *UserManagerShadow) SetApplicationRestrictions(packageName string, restrictions platform.Bundle) {
	s.applicationRestrictions[packageName] = restrictions
}

// AddUserProfile adds a profile for the calling user and returns its newly
// assigned serial number.
func (s *UserManagerShadow) AddUserProfile(user platform.UserHandle) int64 {
	serial := s.nextUserSerial
	s.nextUserSerial++
	s.userProfiles.Put(user, serial)

	return serial
}

// SetSerialNumberForUser pins the serial number of user.
//
// Deprecated: use AddUserProfile, which keeps serial numbers unique.
func (s *UserManagerShadow) SetSerialNumberForUser(user platform.UserHandle, serial int64) {
	s.userProfiles.Put(user, serial)
}

// SetUserUnlocked sets the value reported by IsUserUnlocked.
func (s *UserManagerShadow) SetUserUnlocked(unlocked bool) { s.userUnlocked = unlocked }

// SetManagedProfile sets the value reported by IsManagedProfile.
func (s *UserManagerShadow) SetManagedProfile(managed bool) { s.managedProfile = managed }

// SetIsDemoUser sets the value reported by IsDemoUser.
func (s *UserManagerShadow) SetIsDemoUser(demo bool) { s.demoUser = demo }

// EnforcePermissionChecks makes permission-guarded queries consult the
// context's granted permissions.
func (s *UserManagerShadow) EnforcePermissionChecks(enforce bool) { s.enforcePermissions = enforce }

// SetUserRestriction sets key for user.
func (s *UserManagerShadow) SetUserRestriction(user platform.UserHandle, key string, value bool) {
	s.restrictionsFor(user)[key] = value
}

// ClearUserRestrictions removes every restriction of user.
func (s *UserManagerShadow) ClearUserRestrictions(user platform.UserHandle) {
	delete(s.userRestrictions, user)
}

// SetUserState sets the state consulted by IsUserRunning and
// IsUserRunningOrStopping.
func (s *UserManagerShadow) SetUserState(user platform.UserHandle, state UserState) {
	s.userState[user] = state
}

func (s *UserManagerShadow) restrictionsFor(user platform.UserHandle) platform.Bundle {
	bundle, ok := s.userRestrictions[user]
	if !ok {
		bundle = platform.Bundle{}
		s.userRestrictions[user] = bundle
	}

	return bundle
}

func (s *UserManagerShadow) hasManageUsersPermission() bool {
	return s.ctx != nil && s.ctx.CheckPermission(platform.PermissionManageUsers)
}

func (s *UserManagerShadow) running(user platform.UserHandle, stopping bool) bool {
	switch s.userState[user] {
	case StateRunningLocked, StateRunningUnlocked, StateRunningUnlocking:
		return true
	case StateStopping:
		return stopping
	default:
		return false
	}
}

// UserManagerDescriptor declares the UserManager shadow, available from
// JELLY_BEAN_MR1 on.
func UserManagerDescriptor() m.ShadowDescriptor {
	method := domain.Method[*UserManagerShadow]
	user := func(args []any, i int) platform.UserHandle { return domain.Arg[platform.UserHandle](args, i) }

	return m.Shadow("ShadowUserManager", platform.UserManagerType).
		Versions(m.AtLeast(platform.JellyBeanMR1)).
		Instance(func() any { return newUserManagerShadow() }).
		Constructor(method(func(s *UserManagerShadow, args []any) (any, error) {
			s.ctx = domain.Arg[platform.Context](args, 0)
			return nil, nil
		})).
		MethodIn(platform.SigGetApplicationRestrictions, m.AtLeast(platform.JellyBeanMR2),
			method(func(s *UserManagerShadow, args []any) (any, error) {
				if bundle, ok := s.applicationRestrictions[domain.Arg[string](args, 0)]; ok {
					return bundle, nil
				}

				return platform.Bundle{}, nil
			})).
		MethodIn(platform.SigGetUserProfiles, m.AtLeast(platform.Lollipop),
			method(func(s *UserManagerShadow, _ []any) (any, error) {
				return s.userProfiles.Keys(), nil
			})).
		MethodIn(platform.SigIsUserUnlocked, m.AtLeast(platform.N),
			method(func(s *UserManagerShadow, _ []any) (any, error) {
				return s.userUnlocked, nil
			})).
		MethodIn(platform.SigIsManagedProfile, m.AtLeast(platform.Lollipop),
			method(func(s *UserManagerShadow, _ []any) (any, error) {
				if s.enforcePermissions && !s.hasManageUsersPermission() {
					return nil, fmt.Errorf("%w: you need %s permission to check if specified user a "+
						"managed profile outside your profile group", ErrSecurity, platform.PermissionManageUsers)
				}

				return s.managedProfile, nil
			})).
		MethodIn(platform.SigHasUserRestriction, m.AtLeast(platform.Lollipop),
			method(func(s *UserManagerShadow, args []any) (any, error) {
				bundle, ok := s.userRestrictions[user(args, 1)]
				return ok && bundle.Bool(domain.Arg[string](args, 0)), nil
			})).
		MethodIn(platform.SigGetUserRestrictions, m.AtLeast(platform.JellyBeanMR2),
			method(func(s *UserManagerShadow, args []any) (any, error) {
				return s.restrictionsFor(user(args, 0)), nil
			})).
		Method(platform.SigGetSerialNumberForUser,
			method(func(s *UserManagerShadow, args []any) (any, error) {
				if serial, ok := s.userProfiles.Get(user(args, 0)); ok {
					return serial, nil
				}

				return int64(-1), nil
			})).
		Method(platform.SigGetUserForSerialNumber,
			method(func(s *UserManagerShadow, args []any) (any, error) {
				if u, ok := s.userProfiles.Inverse(domain.Arg[int64](args, 0)); ok {
					return u, nil
				}

				return platform.NoUser, nil
			})).
		MethodIn(platform.SigIsDemoUser, m.AtLeast(platform.NMR1),
			method(func(s *UserManagerShadow, _ []any) (any, error) {
				return s.demoUser, nil
			})).
		Method(platform.SigIsUserRunning,
			method(func(s *UserManagerShadow, args []any) (any, error) {
				return s.running(user(args, 0), false), nil
			})).
		Method(platform.SigIsUserRunningOrStopping,
			method(func(s *UserManagerShadow, args []any) (any, error) {
				return s.running(user(args, 0), true), nil
			})).
		Method(platform.SigGetUsers,
			method(func(_ *UserManagerShadow, _ []any) (any, error) {
				return []platform.UserInfo{}, nil
			})).
		MustBuild()
}
