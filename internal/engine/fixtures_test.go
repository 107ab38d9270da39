package engine

import "github.com/prpo-skupina4/optimizator-ms/internal/models"

func subject(id int64) models.Subject {
	return models.Subject{ID: id, Code: "SUBJ"}
}

func lecture(day, hour, minute, duration int) models.Slot {
	return models.Slot{
		Start:    models.NewTimeOfDay(hour, minute),
		Duration: duration,
		Day:      day,
		Kind:     models.KindLecture,
	}
}

func lectureFor(subjectID int64, day, hour, minute, duration int) models.Slot {
	slot := lecture(day, hour, minute, duration)
	subj := subject(subjectID)
	slot.Subject = &subj
	return slot
}

func exercise(subjectID int64, kind models.SlotKind, day, hour, minute, duration int) models.Slot {
	subj := subject(subjectID)
	return models.Slot{
		Start:    models.NewTimeOfDay(hour, minute),
		Duration: duration,
		Day:      day,
		Kind:     kind,
		Subject:  &subj,
	}
}

func timePtr(hour, minute int) *models.TimeOfDay {
	t := models.NewTimeOfDay(hour, minute)
	return &t
}

func intPtr(v int) *int {
	return &v
}
