package identity_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, role identity.Role) *identity.User {
	t.Helper()
	user, err := identity.NewUser(kernel.NewUUID(), "tester", "s3cret", role)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func TestNewUser(t *testing.T) {
	t.Run("should create active user with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		user, err := identity.NewUser(id, "alice", "pw", identity.RoleDriver)

		require.NoError(t, err)
		assert.True(t, user.ID().IsEqual(id))
		assert.Equal(t, "alice", user.Username())
		assert.Equal(t, identity.RoleDriver, user.Role())
		assert.True(t, user.IsActive())
		assert.Equal(t, 0, user.FailedAttempts())
		assert.Nil(t, user.LastLogin())
		require.NoError(t, user.Validate())
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		_, err := identity.NewUser(kernel.NewUUID(), "alice", "pw", identity.Role("manager"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty username", func(t *testing.T) {
		_, err := identity.NewUser(kernel.NewUUID(), "", "pw", identity.RoleAdmin)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "username is required")
	})

	t.Run("should reject zero value id", func(t *testing.T) {
		var id kernel.UUID
		_, err := identity.NewUser(id, "alice", "pw", identity.RoleAdmin)

		require.Error(t, err)
	})

	t.Run("zero value user fails validation", func(t *testing.T) {
		var user identity.User
		require.Error(t, user.Validate())
	})
}

func TestUser_Authenticate(t *testing.T) {
	t.Run("correct password succeeds and stamps history", func(t *testing.T) {
		user := createUser(t, identity.RoleWarehouse)

		ok, err := user.Authenticate("s3cret")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.NotNil(t, user.LastLogin())
		assert.Len(t, user.LoginHistory(), 1)
		assert.Equal(t, 0, user.FailedAttempts())
	})

	t.Run("wrong password increments counter without error", func(t *testing.T) {
		user := createUser(t, identity.RoleWarehouse)

		ok, err := user.Authenticate("wrong")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 1, user.FailedAttempts())
		assert.True(t, user.IsActive())
	})

	t.Run("success resets the failure counter", func(t *testing.T) {
		user := createUser(t, identity.RoleWarehouse)

		for range 3 {
			_, err := user.Authenticate("wrong")
			require.NoError(t, err)
		}
		assert.Equal(t, 3, user.FailedAttempts())

		ok, err := user.Authenticate("s3cret")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 0, user.FailedAttempts())
	})

	t.Run("fifth consecutive failure locks the account", func(t *testing.T) {
		user := createUser(t, identity.RoleWarehouse)

		for range 4 {
			ok, err := user.Authenticate("wrong")
			require.NoError(t, err)
			assert.False(t, ok)
		}

		ok, err := user.Authenticate("wrong")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.False(t, ok)
		assert.False(t, user.IsActive())
	})

	t.Run("disabled account refuses even the correct password", func(t *testing.T) {
		user := createUser(t, identity.RoleWarehouse)
		for range 5 {
			_, _ = user.Authenticate("wrong")
		}
		require.False(t, user.IsActive())

		ok, err := user.Authenticate("s3cret")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.False(t, ok)
	})

	t.Run("reactivation restores logins", func(t *testing.T) {
		user := createUser(t, identity.RoleWarehouse)
		for range 5 {
			_, _ = user.Authenticate("wrong")
		}

		user.Reactivate()
		require.True(t, user.IsActive())

		ok, err := user.Authenticate("s3cret")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestUser_CanSetStatus(t *testing.T) {
	t.Run("customer service may not send out for delivery", func(t *testing.T) {
		user := createUser(t, identity.RoleCustomerService)

		assert.True(t, user.CanSetStatus("Shipment Created"))
		assert.False(t, user.CanSetStatus("Out for Delivery"))
	})

	t.Run("driver may move but not create", func(t *testing.T) {
		user := createUser(t, identity.RoleDriver)

		assert.True(t, user.CanSetStatus("Picked Up"))
		assert.True(t, user.CanSetStatus("Out for Delivery"))
		assert.True(t, user.CanSetStatus("Delivered"))
		assert.False(t, user.CanSetStatus("Shipment Created"))
	})

	t.Run("warehouse handles sorting stages", func(t *testing.T) {
		user := createUser(t, identity.RoleWarehouse)

		assert.True(t, user.CanSetStatus("In Transit"))
		assert.True(t, user.CanSetStatus("In Transit - Sorting"))
		assert.True(t, user.CanSetStatus("Out for Delivery"))
		assert.False(t, user.CanSetStatus("Delivered"))
	})

	t.Run("admin may set any status including unlisted labels", func(t *testing.T) {
		user := createUser(t, identity.RoleAdmin)

		assert.True(t, user.CanSetStatus("Shipment Created"))
		assert.True(t, user.CanSetStatus("Delivered"))
		assert.True(t, user.CanSetStatus("Returned to Sender"))
	})
}

func TestUser_CreationPermissions(t *testing.T) {
	assert.True(t, createUser(t, identity.RoleCustomerService).CanCreateShipment())
	assert.True(t, createUser(t, identity.RoleAdmin).CanCreateShipment())
	assert.False(t, createUser(t, identity.RoleDriver).CanCreateShipment())
	assert.False(t, createUser(t, identity.RoleWarehouse).CanCreateShipment())

	assert.True(t, createUser(t, identity.RoleAdmin).CanViewAllShipments())
	assert.False(t, createUser(t, identity.RoleCustomerService).CanViewAllShipments())
}

func TestActor(t *testing.T) {
	t.Run("public actor has no permissions and a system name", func(t *testing.T) {
		actor := identity.PublicActor()

		assert.False(t, actor.IsAuthenticated())
		assert.Nil(t, actor.User())
		assert.Equal(t, identity.AnonymousActorName, actor.Username())
		assert.False(t, actor.CanSetStatus("Delivered"))
		assert.False(t, actor.CanCreateShipment())
	})

	t.Run("user actor delegates to the user", func(t *testing.T) {
		user := createUser(t, identity.RoleDriver)
		actor := identity.UserActor(user)

		assert.True(t, actor.IsAuthenticated())
		assert.Equal(t, "tester", actor.Username())
		assert.True(t, actor.CanSetStatus("Delivered"))
		assert.False(t, actor.CanCreateShipment())
	})
}

func TestPasswordHashFormat(t *testing.T) {
	user, err := identity.NewUser(kernel.NewUUID(), "alice", "correct horse", identity.RoleAdmin)
	require.NoError(t, err)

	t.Run("same password verifies", func(t *testing.T) {
		ok, err := user.Authenticate("correct horse")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("prefix of password does not verify", func(t *testing.T) {
		ok, err := user.Authenticate("correct")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
