// Package store persists workouts, the interrupted session and the API token
package store

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/projectascend/ascend/internal/models"
	"github.com/projectascend/ascend/internal/osutil"
	"github.com/projectascend/ascend/internal/timeutil"
)

const (
	workoutBucket = "workouts"
	sessionBucket = "sessions"
	authBucket    = "auth"
	metaBucket    = "meta"
	questBucket   = "quests"
)

var (
	activeKey  = []byte("active")
	tokenKey   = []byte("token")
	versionKey = []byte("schema_version")
)

// lockTimeout bounds how long Open waits for another process to release the
// database file.
var lockTimeout = 1 * time.Second

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// NewClient opens (or creates) the database at dbPath and prepares its
// buckets.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	c := &Client{db}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{
			workoutBucket,
			sessionBucket,
			authBucket,
			metaBucket,
			questBucket,
		} {
			_, err = tx.CreateBucketIfNotExists([]byte(name))
			if err != nil {
				return err
			}
		}

		return c.migrate(tx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}

// open creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.FilePermission,
		&bolt.Options{Timeout: lockTimeout},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAscendRunning
		}

		return nil, err
	}

	return db, nil
}

func (c *Client) SaveWorkout(w *models.Workout) error {
	value, err := json.Marshal(w)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(workoutBucket)).
			Put(timeutil.ToKey(w.StartedAt), value)
	})
}

func (c *Client) Workouts(since, until time.Time) ([]models.Workout, error) {
	var result []models.Workout

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(workoutBucket)).Cursor()
		min := timeutil.ToKey(since)

		var max []byte
		if !until.IsZero() {
			max = timeutil.ToKey(until)
		}

		k, v := cur.Seek(min)

		// a workout started before since still counts if it ended after it
		pk, pv := cur.Prev()
		if pk != nil {
			var w models.Workout

			if err := decode(pk, pv, &w); err != nil {
				return err
			}

			if w.EndedAt.After(since) {
				k, v = pk, pv
			} else {
				k, v = cur.Next()
			}
		} else {
			k, v = cur.Seek(min)
		}

		for ; k != nil; k, v = cur.Next() {
			if max != nil && bytes.Compare(k, max) > 0 {
				break
			}

			var w models.Workout

			if err := decode(k, v, &w); err != nil {
				return err
			}

			result = append(result, w)
		}

		return nil
	})

	return result, err
}

func (c *Client) Unsynced() ([]models.Workout, error) {
	var result []models.Workout

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(workoutBucket)).ForEach(func(k, v []byte) error {
			var w models.Workout

			if err := decode(k, v, &w); err != nil {
				return err
			}

			if !w.Synced {
				result = append(result, w)
			}

			return nil
		})
	})

	return result, err
}

func (c *Client) MarkSynced(startedAt time.Time, remoteID int) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(workoutBucket))
		key := timeutil.ToKey(startedAt)

		v := b.Get(key)
		if v == nil {
			return errWorkoutNotFound.Fmt(startedAt.Format(time.RFC3339))
		}

		var w models.Workout

		if err := decode(key, v, &w); err != nil {
			return err
		}

		w.Synced = true
		w.RemoteID = remoteID

		value, err := json.Marshal(&w)
		if err != nil {
			return err
		}

		return b.Put(key, value)
	})
}

func (c *Client) DeleteWorkouts(workouts []models.Workout) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(workoutBucket))

		for i := range workouts {
			err := b.Delete(timeutil.ToKey(workouts[i].StartedAt))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) SaveActive(a *models.Active) error {
	value, err := json.Marshal(a)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Put(activeKey, value)
	})
}

func (c *Client) Active() (*models.Active, error) {
	var a *models.Active

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(sessionBucket)).Get(activeKey)
		if len(v) == 0 {
			return errNoActiveSession
		}

		a = &models.Active{}

		return decode(activeKey, v, a)
	})
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (c *Client) DeleteActive() error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Delete(activeKey)
	})
}

func questKey(id int) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(id))
}

func (c *Client) SaveQuest(q *models.Quest) error {
	value, err := json.Marshal(q)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(questBucket)).Put(questKey(q.ID), value)
	})
}

func (c *Client) CompletedQuests() ([]models.Quest, error) {
	var quests []models.Quest

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(questBucket)).ForEach(func(k, v []byte) error {
			var q models.Quest

			if err := decode(k, v, &q); err != nil {
				return err
			}

			if q.Completed() {
				quests = append(quests, q)
			}

			return nil
		})
	})

	return quests, err
}

func (c *Client) SaveToken(token string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(authBucket)).Put(tokenKey, []byte(token))
	})
}

func (c *Client) Token() (string, error) {
	var token string

	err := c.View(func(tx *bolt.Tx) error {
		token = string(tx.Bucket([]byte(authBucket)).Get(tokenKey))
		return nil
	})

	return token, err
}

func (c *Client) ClearToken() error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(authBucket)).Delete(tokenKey)
	})
}

func decode(key, value []byte, v any) error {
	err := json.Unmarshal(value, v)
	if err != nil {
		return errCorruptRecord.Fmt(key).Wrap(err)
	}

	return nil
}
