package store

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/projectascend/ascend/internal/timeutil"
)

const schemaVersion uint64 = 2

// migrateWorkoutKeys rewrites workout keys created before keys were stored
// with fixed-width nanoseconds.
func migrateWorkoutKeys(tx *bolt.Tx) error {
	bucket := tx.Bucket([]byte(workoutBucket))

	type workout struct {
		StartedAt time.Time `json:"started_at"`
	}

	pending := make(map[string][]byte)

	cur := bucket.Cursor()

	for k, v := cur.First(); k != nil; k, v = cur.Next() {
		var w workout

		err := json.Unmarshal(v, &w)
		if err != nil {
			return errCorruptRecord.Fmt(k).Wrap(err)
		}

		newKey := timeutil.ToKey(w.StartedAt)
		if bytes.Equal(newKey, k) {
			continue
		}

		pending[string(k)] = newKey
	}

	for oldKey, newKey := range pending {
		v := bytes.Clone(bucket.Get([]byte(oldKey)))

		err := bucket.Delete([]byte(oldKey))
		if err != nil {
			return err
		}

		err = bucket.Put(newKey, v)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) migrate(tx *bolt.Tx) error {
	meta := tx.Bucket([]byte(metaBucket))

	var version uint64
	if v := meta.Get(versionKey); len(v) == 8 {
		version = binary.BigEndian.Uint64(v)
	}

	if version >= schemaVersion {
		return nil
	}

	err := migrateWorkoutKeys(tx)
	if err != nil {
		return err
	}

	return meta.Put(versionKey, binary.BigEndian.AppendUint64(nil, schemaVersion))
}
