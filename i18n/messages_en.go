package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Stages
	message.SetString(lang, "stage.mode_select", "Mode select")
	message.SetString(lang, "stage.prologue", "Prologue")
	message.SetString(lang, "stage.stage-1", "Stage 1: Parrot Forest")
	message.SetString(lang, "stage.stage-2", "Stage 2: The Bomb Went Off!")
	message.SetString(lang, "stage.stage-3", "Stage 3: The Train Never Stops")
	message.SetString(lang, "stage.stage-4", "Stage 4: The Missing Puzzle Piece")
	message.SetString(lang, "stage.stage-5", "Stage 5: Memory of the Crossroads")
	message.SetString(lang, "stage.stage-6", "Stage 6: The Prism Lab")
	message.SetString(lang, "stage.ending", "Ending")
	message.SetString(lang, "stage.encyclopedia", "Encyclopedia")
	message.SetString(lang, "stage.low_intro", "Sprout Agent")
	message.SetString(lang, "stage.low_stage1", "Asking first")
	message.SetString(lang, "stage.low_stage2", "My ears hurt")
	message.SetString(lang, "stage.low_stage3", "Waiting together")
	message.SetString(lang, "stage.low_stage4", "Saying it simply")
	message.SetString(lang, "stage.low_ending", "Certificate")

	// Stats
	message.SetString(lang, "stat.understanding", "Understanding")
	message.SetString(lang, "stat.trust", "Trust")
	message.SetString(lang, "stat.communication", "Communication")
	message.SetString(lang, "stat.patience", "Patience")

	// Interface
	message.SetString(lang, "ui.report", "Mission report")
	message.SetString(lang, "ui.toolbox", "Toolbox")
	message.SetString(lang, "ui.used", "Used")
	message.SetString(lang, "ui.encyclopedia", "Encyclopedia")
	message.SetString(lang, "ui.reset", "Reset")
	message.SetString(lang, "ui.stress", "Stress")
	message.SetString(lang, "ui.hearts", "%d hearts")
	message.SetString(lang, "ui.continue", "Tap to continue")
	message.SetString(lang, "ui.next", "Next")
	message.SetString(lang, "ui.locked", "You have not found this tool yet.")

	message.SetString(lang, "ui.back", "Back")
	message.SetString(lang, "ui.save", "Save")
	message.SetString(lang, "ui.yes", "Yes, reset")
	message.SetString(lang, "ui.no", "No, keep playing")
	message.SetString(lang, "ui.reset_prompt", "All progress will be reset. Continue?")
	message.SetString(lang, "ui.stress_line", "%s: %s (%d)")

	// Stress levels
	message.SetString(lang, "stress.calm", "Calm")
	message.SetString(lang, "stress.uneasy", "Uneasy")
	message.SetString(lang, "stress.upset", "Upset")
	message.SetString(lang, "stress.overwhelmed", "Overwhelmed")

	// Setup screens
	message.SetString(lang, "gender.female", "Girl")
	message.SetString(lang, "gender.male", "Boy")
	message.SetString(lang, "form.player_name", "Your name")
	message.SetString(lang, "form.npc_name", "Friend's name")
	message.SetString(lang, "mode.heading", "Hidden Piece")
	message.SetString(lang, "mode.high", "Grades 5-6: Prism Team")
	message.SetString(lang, "mode.low", "Grades 1-2: Sprout Agent")
	message.SetString(lang, "prologue.heading", "Prologue")
	message.SetString(lang, "prologue.intro", "A new classmate joins your class today. Before you meet, tell us about the two of you.")
	message.SetString(lang, "prologue.start", "Start")
	message.SetString(lang, "low.heading", "Sprout Agent, go!")
	message.SetString(lang, "low.intro", "\"Animals are all different, and so are we.\" Let's go meet a special friend.")

	// Endings
	message.SetString(lang, "ending.heading", "Mission complete!")
	message.SetString(lang, "ending.score", "Prism score: %d")
	message.SetString(lang, "ending.logs", "Times you waited: %d · Tool accuracy: %d%% · Tools used: %d")
	message.SetString(lang, "ending.journal", "Reflection journal")
	message.SetString(lang, "ending.journal_hint", "What did you learn about %s today?")
	message.SetString(lang, "ending.download", "Download report (PDF)")
	message.SetString(lang, "chat.no_key", "Set GEMINI_API_KEY in .env and restart the server to talk with the researcher.")
	message.SetString(lang, "chat.hint", "Ask about friends like %s...")
	message.SetString(lang, "chat.send", "Send")
	message.SetString(lang, "chat.busy", "The researcher is thinking...")
	message.SetString(lang, "low_ending.heading", "How do you feel now?")
	message.SetString(lang, "low_ending.download", "Download certificate (PDF)")
}
