package migrations

const shellOverrideVersion = 0

// renameShellOverride moves shellOverride to shell.
func renameShellOverride(records []Record) []Record {
	out := make([]Record, len(records))

	for i, record := range records {
		shell, ok := record["shellOverride"]
		if !ok {
			out[i] = record
			continue
		}

		migrated := make(Record, len(record))
		for k, v := range record {
			if k != "shellOverride" {
				migrated[k] = v
			}
		}
		migrated["shell"] = shell

		out[i] = migrated
	}

	return out
}
