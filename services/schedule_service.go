package services

import (
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type ScheduleService struct{ db *gorm.DB }

func NewScheduleService(db *gorm.DB) *ScheduleService { return &ScheduleService{db: db} }

func (s *ScheduleService) AddEvent(userID uint, name string, startHour, endHour float64) (*models.ScheduleEvent, error) {
	if name == "" {
		return nil, errors.New("event name is required")
	}
	if startHour < 0 || endHour > 24 {
		return nil, errors.New("event hours must fall within the day")
	}
	if startHour >= endHour {
		return nil, errors.New("event must start before it ends")
	}

	ev := models.ScheduleEvent{UserID: userID, EventName: name, StartHour: startHour, EndHour: endHour}
	if err := s.db.Create(&ev).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *ScheduleService) ListEvents(userID uint) ([]models.ScheduleEvent, error) {
	var events []models.ScheduleEvent
	err := s.db.
		Where("user_id = ?", userID).
		Order("start_hour ASC").
		Find(&events).Error
	return events, err
}

func (s *ScheduleService) DeleteEvent(userID, eventID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", eventID, userID).Delete(&models.ScheduleEvent{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *ScheduleService) AddHobby(userID uint, name string) (*models.Hobby, error) {
	if name == "" {
		return nil, errors.New("hobby name is required")
	}
	hobby := models.Hobby{UserID: userID, Name: name}
	if err := s.db.Create(&hobby).Error; err != nil {
		return nil, err
	}
	return &hobby, nil
}

func (s *ScheduleService) ListHobbies(userID uint) ([]models.Hobby, error) {
	var hobbies []models.Hobby
	err := s.db.Where("user_id = ?", userID).Find(&hobbies).Error
	return hobbies, err
}

func (s *ScheduleService) DeleteHobby(userID, hobbyID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", hobbyID, userID).Delete(&models.Hobby{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
