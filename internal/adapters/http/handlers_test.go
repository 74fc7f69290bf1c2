package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Shailsharma2604/Sudoku-Game/internal/generator"
	"github.com/Shailsharma2604/Sudoku-Game/internal/hint"
	"github.com/Shailsharma2604/Sudoku-Game/internal/infrastructure/storage"
	"github.com/Shailsharma2604/Sudoku-Game/internal/solver"
	"github.com/Shailsharma2604/Sudoku-Game/internal/usecase"
	"github.com/Shailsharma2604/Sudoku-Game/internal/validator"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	uc := usecase.NewService(
		solver.NewBacktrackingSolver(),
		generator.NewRandomGenerator(),
		validator.New(),
		hint.NewSingles(),
		storage.NewLeaderboard(filepath.Join(t.TempDir(), "scores.json")),
	)
	h := New(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	mux := http.NewServeMux()
	h.Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any, out any) int {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestSolveEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// (0,8) is the first empty cell and has no candidate: 1..8 occupy its
	// row and 9 its column.
	var unsolvable [9][9]uint8
	for c := 0; c < 8; c++ {
		unsolvable[0][c] = uint8(c + 1)
	}
	unsolvable[1][8] = 9
	var out solveResp
	if code := postJSON(t, srv.URL+"/api/solve", solveReq{Board: unsolvable}, &out); code != http.StatusUnprocessableEntity {
		t.Fatalf("unsolvable board: status %d", code)
	}

	// values past 9 deserialize fine but are a contract violation
	var outOfRange [9][9]uint8
	outOfRange[0][0] = 200
	if code := postJSON(t, srv.URL+"/api/solve", solveReq{Board: outOfRange}, &out); code != http.StatusBadRequest {
		t.Fatalf("out-of-range given: status %d (%s)", code, out.Error)
	}
	var vr validateResp
	if code := postJSON(t, srv.URL+"/api/validate", validateReq{Board: outOfRange}, &vr); code != http.StatusBadRequest {
		t.Fatalf("out-of-range value in validate: status %d (%s)", code, vr.Error)
	}

	var empty [9][9]uint8
	if code := postJSON(t, srv.URL+"/api/solve", solveReq{Board: empty}, &out); code != http.StatusOK {
		t.Fatalf("empty board: status %d (%s)", code, out.Error)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if out.Board[r][c] == 0 {
				t.Fatalf("unsolved cell in response at r=%d c=%d", r, c)
			}
		}
	}
}

func TestGameFlowOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	// moves before a game exists are rejected
	if code := postJSON(t, srv.URL+"/api/game/move", gameMoveReq{Row: 0, Col: 0, Value: 1}, nil); code != http.StatusConflict {
		t.Fatalf("move without game: status %d", code)
	}

	var state gameStateResp
	if code := postJSON(t, srv.URL+"/api/game/new", gameNewReq{Difficulty: "easy", Seed: 42}, &state); code != http.StatusOK {
		t.Fatalf("new game: status %d (%s)", code, state.Error)
	}
	if state.Difficulty != "easy" {
		t.Fatalf("difficulty = %q", state.Difficulty)
	}

	// editing a fixed given must fail
	fr, fc := -1, -1
	er, ec := -1, -1
	for r := 0; r < 9 && (fr < 0 || er < 0); r++ {
		for c := 0; c < 9; c++ {
			if state.Fixed[r][c] && fr < 0 {
				fr, fc = r, c
			}
			if !state.Fixed[r][c] && er < 0 {
				er, ec = r, c
			}
		}
	}
	if code := postJSON(t, srv.URL+"/api/game/move", gameMoveReq{Row: fr, Col: fc, Value: 1}, nil); code != http.StatusBadRequest {
		t.Fatalf("move on fixed cell: status %d", code)
	}

	// set then undo an editable cell
	var mv gameMoveResp
	if code := postJSON(t, srv.URL+"/api/game/move", gameMoveReq{Row: er, Col: ec, Value: 9}, &mv); code != http.StatusOK {
		t.Fatalf("move: status %d (%s)", code, mv.Error)
	}
	var undo gameUndoResp
	if code := postJSON(t, srv.URL+"/api/game/undo", struct{}{}, &undo); code != http.StatusOK || !undo.Undone {
		t.Fatalf("undo: status %d resp %+v", code, undo)
	}

	// hint to completion, then check with a name
	for i := 0; i < 81; i++ {
		var hr gameHintResp
		if code := postJSON(t, srv.URL+"/api/game/hint", struct{}{}, &hr); code != http.StatusOK {
			t.Fatalf("hint: status %d", code)
		}
		if !hr.Found {
			break
		}
	}
	var check gameCheckResp
	if code := postJSON(t, srv.URL+"/api/game/check", gameCheckReq{Name: "tester"}, &check); code != http.StatusOK {
		t.Fatalf("check: status %d (%s)", code, check.Error)
	}
	if !check.Filled || !check.Completed || !check.Recorded {
		t.Fatalf("check after full hinting: %+v", check)
	}

	resp, err := http.Get(srv.URL + "/api/leaderboard?limit=10")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var lb leaderboardResp
	if err := json.NewDecoder(resp.Body).Decode(&lb); err != nil {
		t.Fatal(err)
	}
	if len(lb.Records) != 1 || lb.Records[0].Name != "tester" {
		t.Fatalf("leaderboard: %+v", lb.Records)
	}
}
