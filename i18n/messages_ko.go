package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Korean

	// Stages
	message.SetString(lang, "stage.mode_select", "모드 선택")
	message.SetString(lang, "stage.prologue", "Prologue")
	message.SetString(lang, "stage.stage-1", "Stage 1: 앵무새의 숲")
	message.SetString(lang, "stage.stage-2", "Stage 2: 폭탄이 터졌다!")
	message.SetString(lang, "stage.stage-3", "Stage 3: 기차는 멈추지 않아")
	message.SetString(lang, "stage.stage-4", "Stage 4: 사라진 퍼즐 조각")
	message.SetString(lang, "stage.stage-5", "Stage 5: 갈림길의 기억")
	message.SetString(lang, "stage.stage-6", "Stage 6: 프리즘 연구소")
	message.SetString(lang, "stage.ending", "Ending")
	message.SetString(lang, "stage.encyclopedia", "도감")
	message.SetString(lang, "stage.low_intro", "새싹 요원")
	message.SetString(lang, "stage.low_stage1", "먼저 물어봐주기")
	message.SetString(lang, "stage.low_stage2", "귀가 아파요")
	message.SetString(lang, "stage.low_stage3", "기다려주기")
	message.SetString(lang, "stage.low_stage4", "쉽게 말해주기")
	message.SetString(lang, "stage.low_ending", "수료증 발급")

	// Tools
	message.SetString(lang, "tool.aac", "AAC 태블릿")
	message.SetString(lang, "tool.headset", "노이즈 캔슬링 헤드셋")
	message.SetString(lang, "tool.timer", "비주얼 타이머")
	message.SetString(lang, "tool.squishy", "말랑이 (Fidget Toy)")
	message.SetString(lang, "tool.pecs", "PECS 카드")
	message.SetString(lang, "tool.map", "숲길 지도")
	message.SetString(lang, "tool.ribbon", "노란 리본")

	// Stats
	message.SetString(lang, "stat.understanding", "이해")
	message.SetString(lang, "stat.trust", "신뢰")
	message.SetString(lang, "stat.communication", "소통")
	message.SetString(lang, "stat.patience", "인내")

	// Interface
	message.SetString(lang, "ui.report", "미션 리포트")
	message.SetString(lang, "ui.toolbox", "도구함")
	message.SetString(lang, "ui.used", "사용됨")
	message.SetString(lang, "ui.encyclopedia", "도감")
	message.SetString(lang, "ui.reset", "초기화")
	message.SetString(lang, "ui.stress", "스트레스")
	message.SetString(lang, "ui.hearts", "하트 %d개")
	message.SetString(lang, "ui.continue", "터치하여 계속")
	message.SetString(lang, "ui.next", "다음")
	message.SetString(lang, "ui.locked", "아직 발견하지 못한 도구예요.")

	message.SetString(lang, "ui.back", "돌아가기")
	message.SetString(lang, "ui.save", "저장")
	message.SetString(lang, "ui.yes", "네, 초기화할게요")
	message.SetString(lang, "ui.no", "아니요, 계속할게요")
	message.SetString(lang, "ui.reset_prompt", "모든 진행 상황이 초기화됩니다. 계속할까요?")
	message.SetString(lang, "ui.stress_line", "%s: %s (%d)")

	// Stress levels
	message.SetString(lang, "stress.calm", "평온")
	message.SetString(lang, "stress.uneasy", "불안")
	message.SetString(lang, "stress.upset", "속상함")
	message.SetString(lang, "stress.overwhelmed", "과부하")

	// Setup screens
	message.SetString(lang, "gender.female", "여자")
	message.SetString(lang, "gender.male", "남자")
	message.SetString(lang, "form.player_name", "내 이름")
	message.SetString(lang, "form.npc_name", "친구 이름")
	message.SetString(lang, "mode.heading", "히든 피스")
	message.SetString(lang, "mode.high", "5-6학년: 프리즘 팀")
	message.SetString(lang, "mode.low", "1-2학년: 새싹 요원")
	message.SetString(lang, "prologue.heading", "프롤로그")
	message.SetString(lang, "prologue.intro", "오늘 우리 반에 새 친구가 전학 왔어요. 만나기 전에 두 사람을 소개해 주세요.")
	message.SetString(lang, "prologue.start", "시작하기")
	message.SetString(lang, "low.heading", "새싹 요원, 출동!")
	message.SetString(lang, "low.intro", "\"동물들은 모두 달라요. 우리도 그래요.\" 특별한 친구를 만나러 가 볼까요?")

	// Endings
	message.SetString(lang, "ending.heading", "미션 완료!")
	message.SetString(lang, "ending.score", "프리즘 점수: %d")
	message.SetString(lang, "ending.logs", "기다려 준 횟수: %d · 도구 정확도: %d%% · 사용한 도구: %d")
	message.SetString(lang, "ending.journal", "성찰 일기")
	message.SetString(lang, "ending.journal_hint", "오늘 %s에 대해 무엇을 알게 되었나요?")
	message.SetString(lang, "ending.download", "리포트 다운로드 (PDF)")
	message.SetString(lang, "chat.no_key", "연구원과 대화하려면 .env에 GEMINI_API_KEY를 설정하고 서버를 다시 시작하세요.")
	message.SetString(lang, "chat.hint", "%s 같은 친구에 대해 물어보세요...")
	message.SetString(lang, "chat.send", "보내기")
	message.SetString(lang, "chat.busy", "연구원이 생각 중이에요...")
	message.SetString(lang, "low_ending.heading", "지금 기분이 어때요?")
	message.SetString(lang, "low_ending.download", "수료증 다운로드 (PDF)")

	// Stickers and badges
	message.SetString(lang, "sticker.happy", "기뻐요")
	message.SetString(lang, "sticker.proud", "뿌듯해요")
	message.SetString(lang, "sticker.calm", "편안해요")
	message.SetString(lang, "sticker.surprised", "놀라워요")
	message.SetString(lang, "badge.communication", "소통의 배지")
	message.SetString(lang, "badge.care", "배려의 방패")
	message.SetString(lang, "badge.promise", "약속의 시계")
	message.SetString(lang, "badge.cooperation", "협력의 전구")
	message.SetString(lang, "badge.prism", "프리즘 팀")
}
