package campstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"io.mapleapps.campquest/internal/camp"
)

// Seed writes camp records into the camps collection, keyed by CampID.
// Existing documents with the same id are overwritten. Development tooling,
// not part of the serving path.
func Seed(ctx context.Context, client *firestore.Client, records []camp.CampRecord) error {
	collection := client.Collection(campsCollection)
	for _, record := range records {
		if record.CampID == "" {
			return fmt.Errorf("camp %q has no campId", record.Name)
		}
		if _, err := collection.Doc(record.CampID).Set(ctx, record); err != nil {
			return fmt.Errorf("failed to seed camp %q: %w", record.Name, err)
		}
	}
	return nil
}
