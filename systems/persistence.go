package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// HighScores maps level name to the best score recorded for it.
type HighScores map[string]int

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for high-score storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "paku",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadHighScores loads the saved score table. Missing or unreadable
// data degrades to an empty table.
func LoadHighScores() HighScores {
	scores := HighScores{}
	if !gdataInitialized || gdataManager == nil {
		return scores
	}

	data, err := gdataManager.LoadItem("highscores")
	if err != nil {
		log.Printf("Warning: Could not load high scores: %v", err)
		return scores
	}
	if data == nil {
		// No saved scores yet
		return scores
	}

	if err := json.Unmarshal(data, &scores); err != nil {
		log.Printf("Warning: Could not parse saved high scores: %v", err)
		return HighScores{}
	}
	return scores
}

// SaveHighScore records points for a level if it beats the stored
// best, returning the best score after the update.
func SaveHighScore(level string, points int) int {
	scores := LoadHighScores()
	if best, ok := scores[level]; ok && best >= points {
		return best
	}
	scores[level] = points

	if !gdataInitialized || gdataManager == nil {
		return points
	}
	data, err := json.Marshal(scores)
	if err != nil {
		log.Printf("Warning: Could not serialize high scores: %v", err)
		return points
	}
	if err := gdataManager.SaveItem("highscores", data); err != nil {
		log.Printf("Warning: Could not save high scores: %v", err)
	}
	return points
}

// BestScore returns the stored best for a level, zero when none.
func BestScore(level string) int {
	return LoadHighScores()[level]
}
