package service

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/teacher-kiwi/sociogram/internal/model"
	"github.com/teacher-kiwi/sociogram/internal/repository"
)

// Shared prompts available to every teacher on a fresh deployment. Weights
// are chosen per survey, so the seed carries text only.
var defaultQuestionTexts = []string{
	"Who would you most like to sit next to?",
	"Who would you pick first for your team?",
	"Who do you talk to most often during break?",
	"Who would you ask for help with schoolwork?",
	"Who do you find it hard to work with?",
	"Who would you rather not sit next to?",
}

// SeedDefaultQuestions inserts the shared default question set when none
// exist yet. Safe to run on every startup.
func SeedDefaultQuestions(questionRepo repository.QuestionRepository) error {
	count, err := questionRepo.CountDefaults()
	if err != nil {
		return fmt.Errorf("counting default questions: %w", err)
	}
	if count > 0 {
		return nil
	}

	questions := make([]*model.Question, 0, len(defaultQuestionTexts))
	for _, text := range defaultQuestionTexts {
		questions = append(questions, &model.Question{QuestionText: text, IsDefault: true})
	}
	if err := questionRepo.CreateBatch(questions); err != nil {
		return fmt.Errorf("seeding default questions: %w", err)
	}
	log.Info().Int("count", len(questions)).Msg("Seeded default questions")
	return nil
}
