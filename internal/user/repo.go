package user

import (
	"context"
	"errors"
	"time"

	"github.com/MikeMC777/cafezinho/internal/kv"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrNameRequired = errors.New("customer name required")
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository holds the single user of this device.
type Repository interface {
	Get(ctx context.Context) (*User, error)
	Save(ctx context.Context, u *User) error
	Delete(ctx context.Context) error
}

// KVRepo stores the user as one JSON blob under "<namespace>:user".
type KVRepo struct {
	store kv.Store
	key   string
}

func NewKVRepo(store kv.Store, namespace string) *KVRepo {
	return &KVRepo{store: store, key: kv.Key(namespace, "user")}
}

func (r *KVRepo) Get(ctx context.Context) (*User, error) {
	var u User
	if err := kv.GetJSON(ctx, r.store, r.key, &u); err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *KVRepo) Save(ctx context.Context, u *User) error {
	return kv.SetJSON(ctx, r.store, r.key, u)
}

func (r *KVRepo) Delete(ctx context.Context) error {
	return r.store.Remove(ctx, r.key)
}
