package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsphweid/chordid/chord"
	"github.com/jsphweid/chordid/config"
	"github.com/jsphweid/chordid/logger"
	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/theory"
	"github.com/jsphweid/chordid/util"
)

// replaced with the real logger once a command starts up, handlers
// stay callable without one
var log = zap.NewNop().Sugar()

var upgrader = websocket.Upgrader{
	// cross origin policy is enforced by the cors middleware on the
	// rest routes, sockets accept any origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the recognition api",
	Long:  `Serves the recognition api`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func recognizePayload(notes model.Notes) model.RecognizeResponse {
	matches := chord.Recognize(notes)

	res := model.RecognizeResponse{Matches: matches}
	if res.Matches == nil {
		res.Matches = []model.Match{}
	}
	if len(matches) == 0 {
		return res
	}

	best := chord.FormatMatch(matches[0], notes)
	res.Best = &best

	// scale degrees relative to the best root
	root := matches[0].Root
	for _, pc := range util.SortedKeys(theory.ReduceToPitchClassSet(notes)) {
		res.Degrees = append(res.Degrees, model.Degree{
			PC:    pc,
			Note:  theory.NoteName(pc),
			Label: theory.IntervalName(pc - root),
		})
	}

	return res
}

func HandleRecognize(w http.ResponseWriter, r *http.Request) {
	var input model.RecognizeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not parse request body: "+err.Error())
		return
	}

	json.NewEncoder(w).Encode(recognizePayload(input.Notes))
}

func HandleVocabulary(w http.ResponseWriter, r *http.Request) {
	res := model.VocabularyResponse{NoteNames: theory.NoteNames}
	for _, typeKey := range theory.ChordOrder {
		res.Chords = append(res.Chords, model.VocabularyEntry{
			TypeKey:   typeKey,
			Intervals: theory.Formulas[typeKey],
			Suffix:    theory.Suffix(typeKey),
			LongName:  theory.LongName(typeKey),
		})
	}
	json.NewEncoder(w).Encode(res)
}

func HandleTemplates(w http.ResponseWriter, r *http.Request) {
	templates := chord.Templates()
	json.NewEncoder(w).Encode(model.TemplatesResponse{
		Count:     len(templates),
		Templates: templates,
	})
}

func HandleRegenTemplates(w http.ResponseWriter, r *http.Request) {
	chord.Regenerate()
	count := len(chord.Templates())
	log.Infow("template bank rebuilt", "count", count)
	json.NewEncoder(w).Encode(model.RegenResponse{Count: count})
}

func HandleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnw("could not upgrade live connection", "error", err)
		return
	}
	defer conn.Close()

	session := uuid.NewString()
	log.Infow("live session opened", "session", session)

	for {
		var input model.RecognizeRequestBody
		if err := conn.ReadJSON(&input); err != nil {
			log.Infow("live session closed", "session", session, "reason", err)
			return
		}
		if err := conn.WriteJSON(recognizePayload(input.Notes)); err != nil {
			log.Warnw("could not write to live session", "session", session, "error", err)
			return
		}
	}
}

func serve() {
	cfg := config.ProvideConfig()
	log = logger.ProvideLogger(cfg.Debug)

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/recognize", HandleRecognize).Methods("POST")
	router.HandleFunc("/vocabulary", HandleVocabulary).Methods("GET")
	router.HandleFunc("/templates", HandleTemplates).Methods("GET")
	router.HandleFunc("/templates/regen", HandleRegenTemplates).Methods("POST")
	router.HandleFunc("/live", HandleLive)

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(router)

	log.Infow("serving", "port", cfg.Port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", cfg.Port), handler))
}
