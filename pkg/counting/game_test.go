package counting

import (
	"math"
	"strconv"
	"testing"

	"github.com/PancyStudios/LaffeyBotGo/pkg/storage"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	game := NewGame(storage.NewCountingStore(t.TempDir()))
	if err := game.BindChannel("guild1", "chan1"); err != nil {
		t.Fatal(err)
	}
	return game
}

// count plays one message and fails the test on engine errors
func count(t *testing.T, game *Game, userID, content string) Result {
	t.Helper()
	result, err := game.HandleMessage("guild1", "chan1", userID, content)
	if err != nil {
		t.Fatalf("HandleMessage(%q) returned error: %v", content, err)
	}
	return result
}

func TestExtractNumber(t *testing.T) {
	tests := []struct {
		text string
		want int
		ok   bool
	}{
		{"6", 6, true},
		{"6 apples", 6, true},
		{"6abc", 6, true},
		{"  42  ", 42, true},
		{"123go", 123, true},
		{"18446744073709551617", math.MaxInt, true},
		{"abc6", 0, false},
		{"", 0, false},
		{"   ", 0, false},
		{"-5", 0, false},
	}

	for _, tt := range tests {
		got, ok := ExtractNumber(tt.text)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ExtractNumber(%q) = (%d, %v), want (%d, %v)", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBindAndMembership(t *testing.T) {
	game := newTestGame(t)

	if !game.IsCountingChannel("guild1", "chan1") {
		t.Error("IsCountingChannel() = false for bound channel")
	}
	if game.IsCountingChannel("guild1", "other") {
		t.Error("IsCountingChannel() = true for unbound channel")
	}
	if game.IsCountingChannel("guild2", "chan1") {
		t.Error("IsCountingChannel() = true for other guild")
	}
}

func TestHandleMessageIgnoresOtherChannels(t *testing.T) {
	game := newTestGame(t)

	result, err := game.HandleMessage("guild1", "other", "userA", "1")
	if err != nil {
		t.Fatal(err)
	}
	if result.Kind != ResultIgnored {
		t.Errorf("Kind = %v, want ResultIgnored", result.Kind)
	}
}

func TestHandleMessageValidation(t *testing.T) {
	game := newTestGame(t)

	// Advance to C=5 alternating users
	users := []string{"userA", "userB"}
	for i := 1; i <= 5; i++ {
		result := count(t, game, users[i%2], strconv.Itoa(i))
		if result.Kind != ResultAccepted {
			t.Fatalf("count %d Kind = %v, want ResultAccepted", i, result.Kind)
		}
	}
	// userB counted 5; the correct number from the other user is accepted
	result := count(t, game, "userA", "6")
	if result.Kind != ResultAccepted || result.Number != 6 {
		t.Errorf("accept = (%v, %d), want (ResultAccepted, 6)", result.Kind, result.Number)
	}

	// Same user twice in a row
	result = count(t, game, "userA", "7")
	if result.Kind != ResultSameUser {
		t.Errorf("Kind = %v, want ResultSameUser", result.Kind)
	}
	if result.Expected != 7 {
		t.Errorf("Expected = %d, want 7", result.Expected)
	}

	// Wrong number from another user, expected shown
	result = count(t, game, "userB", "9")
	if result.Kind != ResultWrongNumber {
		t.Errorf("Kind = %v, want ResultWrongNumber", result.Kind)
	}
	if result.Expected != 7 || result.Number != 9 {
		t.Errorf("(Expected, Number) = (%d, %d), want (7, 9)", result.Expected, result.Number)
	}

	// Rejections never roll the count back
	result = count(t, game, "userB", "7")
	if result.Kind != ResultAccepted {
		t.Errorf("Kind after rejections = %v, want ResultAccepted", result.Kind)
	}

	// Number with trailing text is accepted with the prefix
	result = count(t, game, "userA", "8abc")
	if result.Kind != ResultAccepted || result.Number != 8 {
		t.Errorf("prefix accept = (%v, %d), want (ResultAccepted, 8)", result.Kind, result.Number)
	}
}

func TestHandleMessageOverflowingNumber(t *testing.T) {
	game := newTestGame(t)

	// 2^64+1 would wrap to 1 with unchecked arithmetic; it has to be
	// rejected as a wrong number, not accepted as the expected count
	result := count(t, game, "userA", "18446744073709551617")
	if result.Kind != ResultWrongNumber {
		t.Fatalf("Kind = %v, want ResultWrongNumber", result.Kind)
	}
	if result.Expected != 1 {
		t.Errorf("Expected = %d, want 1", result.Expected)
	}

	state, _ := game.GuildStats("guild1")
	if state.CurrentNumber != 0 {
		t.Errorf("CurrentNumber = %d, want 0", state.CurrentNumber)
	}
	report, _ := game.UserStats("guild1", "userA")
	if report.Failed != 1 {
		t.Errorf("Failed = %d, want 1", report.Failed)
	}
}

func TestHandleMessageNoNumber(t *testing.T) {
	game := newTestGame(t)
	count(t, game, "userA", "1")

	result := count(t, game, "userB", "hola")
	if result.Kind != ResultNoNumber {
		t.Fatalf("Kind = %v, want ResultNoNumber", result.Kind)
	}
	if result.Expected != 2 {
		t.Errorf("Expected = %d, want 2", result.Expected)
	}

	// No state change and no failed counter
	state, ok := game.GuildStats("guild1")
	if !ok {
		t.Fatal("GuildStats() missing guild")
	}
	if state.CurrentNumber != 1 {
		t.Errorf("CurrentNumber = %d, want 1", state.CurrentNumber)
	}
	report, _ := game.UserStats("guild1", "userB")
	if report.Failed != 0 {
		t.Errorf("Failed = %d, want 0 after no-number message", report.Failed)
	}
}

func TestFailedCounterOnRejection(t *testing.T) {
	game := newTestGame(t)
	count(t, game, "userA", "1")

	count(t, game, "userB", "5") // wrong number
	count(t, game, "userA", "2") // same user

	reportB, _ := game.UserStats("guild1", "userB")
	if reportB.Failed != 1 {
		t.Errorf("userB Failed = %d, want 1", reportB.Failed)
	}
	reportA, _ := game.UserStats("guild1", "userA")
	if reportA.Correct != 1 || reportA.Failed != 1 {
		t.Errorf("userA (Correct, Failed) = (%d, %d), want (1, 1)", reportA.Correct, reportA.Failed)
	}
}

func TestResetPreservesHistory(t *testing.T) {
	game := newTestGame(t)

	users := []string{"userA", "userB"}
	for i := 1; i <= 4; i++ {
		count(t, game, users[i%2], strconv.Itoa(i))
	}

	result := count(t, game, "userA", "  ResetNum  ")
	if result.Kind != ResultReset {
		t.Fatalf("Kind = %v, want ResultReset", result.Kind)
	}
	if result.Previous != 4 {
		t.Errorf("Previous = %d, want 4", result.Previous)
	}

	state, _ := game.GuildStats("guild1")
	if state.CurrentNumber != 0 {
		t.Errorf("CurrentNumber after reset = %d, want 0", state.CurrentNumber)
	}
	if state.LastUserID != "" {
		t.Errorf("LastUserID after reset = %q, want empty", state.LastUserID)
	}
	if state.HighScore != 4 {
		t.Errorf("HighScore after reset = %d, want 4", state.HighScore)
	}
	if state.TotalCounts != 4 {
		t.Errorf("TotalCounts after reset = %d, want 4", state.TotalCounts)
	}

	// The user that counted last can open the new round
	result = count(t, game, users[4%2], "1")
	if result.Kind != ResultAccepted {
		t.Errorf("Kind after reset = %v, want ResultAccepted", result.Kind)
	}
}

func TestCelebration(t *testing.T) {
	game := newTestGame(t)

	users := []string{"userA", "userB"}
	for i := 1; i <= 10; i++ {
		result := count(t, game, users[i%2], strconv.Itoa(i))
		if result.Kind != ResultAccepted {
			t.Fatalf("count %d rejected", i)
		}
		// New high scores below 10 that are not multiples of 10 stay quiet
		if i < 10 && result.Celebrate {
			t.Errorf("count %d Celebrate = true, want false", i)
		}
		if i == 10 {
			if !result.NewHighScore {
				t.Error("count 10 NewHighScore = false, want true")
			}
			if !result.Celebrate {
				t.Error("count 10 Celebrate = false, want true")
			}
		}
	}

	// After a reset the same numbers are no longer high scores
	count(t, game, "userA", "resetnum")
	for i := 1; i <= 10; i++ {
		result := count(t, game, users[i%2], strconv.Itoa(i))
		if result.NewHighScore || result.Celebrate {
			t.Errorf("count %d after reset (NewHighScore, Celebrate) = (%v, %v), want (false, false)",
				i, result.NewHighScore, result.Celebrate)
		}
	}

	// Past 50 every new high score celebrates, multiple of 10 or not
	for i := 11; i <= 51; i++ {
		result := count(t, game, users[i%2], strconv.Itoa(i))
		if !result.NewHighScore {
			t.Fatalf("count %d NewHighScore = false, want true", i)
		}
		want := i%10 == 0 || i > 50
		if result.Celebrate != want {
			t.Errorf("count %d Celebrate = %v, want %v", i, result.Celebrate, want)
		}
	}
}

func TestLeaderboard(t *testing.T) {
	game := newTestGame(t)

	users := []string{"userA", "userB", "userC"}
	for i := 1; i <= 9; i++ {
		result := count(t, game, users[i%3], strconv.Itoa(i))
		if result.Kind != ResultAccepted {
			t.Fatalf("count %d rejected", i)
		}
	}
	// Three correct counts each; add failures to userC
	count(t, game, "userC", "99")

	entries := game.Leaderboard("guild1", 2)
	if len(entries) != 2 {
		t.Fatalf("Leaderboard(2) returned %d entries, want 2", len(entries))
	}
	for _, entry := range entries {
		if entry.Correct != 3 {
			t.Errorf("entry %s Correct = %d, want 3", entry.UserID, entry.Correct)
		}
	}

	full := game.Leaderboard("guild1", 0)
	if len(full) != 3 {
		t.Fatalf("Leaderboard(0) returned %d entries, want 3", len(full))
	}
}

func TestUserStatsAccuracy(t *testing.T) {
	game := newTestGame(t)

	count(t, game, "userA", "1")
	count(t, game, "userB", "2")
	count(t, game, "userA", "9") // fallo

	report, ok := game.UserStats("guild1", "userA")
	if !ok {
		t.Fatal("UserStats() missing guild")
	}
	if report.Correct != 1 || report.Failed != 1 {
		t.Errorf("(Correct, Failed) = (%d, %d), want (1, 1)", report.Correct, report.Failed)
	}
	if report.Accuracy != 50 {
		t.Errorf("Accuracy = %v, want 50", report.Accuracy)
	}

	// A user with no attempts reports zero accuracy
	empty, _ := game.UserStats("guild1", "ghost")
	if empty.Accuracy != 0 {
		t.Errorf("ghost Accuracy = %v, want 0", empty.Accuracy)
	}
}
