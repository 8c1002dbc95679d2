package camp

// GroupCamps folds per-session camp records into one logical camp per
// distinct name. Descriptive fields come from the first record seen for a
// name; later records with the same name never overwrite them. Sessions are
// appended in encounter order, except that a session whose start, end, and
// price all match an existing session in the group is dropped as a
// duplicate (location is not compared). Records without both date endpoints
// are skipped entirely.
func GroupCamps(records []CampRecord) []GroupedCamp {
	grouped := make(map[string]*GroupedCamp)
	var order []string

	for _, record := range records {
		if record.Dates.StartDate.IsZero() || record.Dates.EndDate.IsZero() {
			continue
		}

		key := record.Name
		group, exists := grouped[key]
		if !exists {
			group = &GroupedCamp{
				CreatedBy:   record.CreatedBy,
				Name:        record.Name,
				Description: record.Description,
				Category:    record.Category,
				Tags:        record.Tags,
				AgeRange:    record.AgeRange,
				Rating:      record.Rating,
				CampLink:    record.CampLink,
				CreatedAt:   record.CreatedAt,
				SavesCount:  record.SavesCount,
				Image:       record.Image,
				Sessions:    []Session{},
			}
			grouped[key] = group
			order = append(order, key)
		}

		session := Session{
			CampID:   record.CampID,
			Dates:    record.Dates,
			Price:    record.Price,
			Location: record.Location,
		}
		if !hasDuplicateSession(group.Sessions, session) {
			group.Sessions = append(group.Sessions, session)
		}
	}

	result := make([]GroupedCamp, 0, len(order))
	for _, key := range order {
		result = append(result, *grouped[key])
	}
	return result
}

func hasDuplicateSession(sessions []Session, candidate Session) bool {
	for _, existing := range sessions {
		if existing.Dates.StartDate.Equal(candidate.Dates.StartDate) &&
			existing.Dates.EndDate.Equal(candidate.Dates.EndDate) &&
			existing.Price == candidate.Price {
			return true
		}
	}
	return false
}
