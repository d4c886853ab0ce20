// Package migrations upgrades persisted software records written by older
// schema versions.
//
// Schema version N means the first N migrations have been applied. Each
// migration lives in its own file and takes its slot in chain by version
// index, so two migrations claiming the same version do not compile.
package migrations

import (
	"log/slog"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ysmood/gson"
)

// Record is one persisted software definition in whatever shape its schema had
type Record = map[string]gson.JSON

// Migration transforms records of schema version i into version i+1.
//
// It must keep the number of records and must only ever see records of its
// own source version.
type Migration func(records []Record) []Record

var chain = [...]Migration{
	shellOverrideVersion: renameShellOverride,
}

// Current is the schema version produced by Migrate
const Current = len(chain)

// Migrate upgrades records stored at schema version from to Current.
func Migrate(records []Record, from int) ([]Record, error) {
	if from < 0 || from > Current {
		return nil, ee.Errorf("unsupported schema version %d (current is %d)", from, Current)
	}

	for version := from; version < Current; version++ {
		slog.Debug("Apply migration", "from", version, "to", version+1, "records", len(records))

		migrated := chain[version](records)
		if len(migrated) != len(records) {
			return nil, ee.Errorf("migration %d changed the number of records from %d to %d", version, len(records), len(migrated))
		}
		records = migrated
	}

	return records, nil
}

// AsRecords converts decoded JSON objects into records
func AsRecords(objects []map[string]any) []Record {
	records := make([]Record, len(objects))
	for i, o := range objects {
		records[i] = gson.New(o).Map()
	}
	return records
}
