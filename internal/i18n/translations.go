package i18n

// translations maps a language code to its string table.
var translations = map[string]map[Key]string{
	"en": {
		KeyWelcomeTitle:    "Wizard Chase",
		KeyWelcomeSubtitle: "Catch the wizard before time runs out!",
		KeyRulesTitle:      "How to play",
		KeyRules:           "Click the wizard for %d points. Power-ups give +%d points or +%d seconds.",
		KeyNameHint:        "Enter your name",
		KeyStartGame:       "Start game",
		KeyNameRequired:    "Please enter your name first",
		KeySettings:        "Settings",
		KeyLanguage:        "Language",
		KeyAudioSettings:   "Audio",
		KeyMusic:           "Background music",
		KeySound:           "Sound effects",
		KeyOn:              "On",
		KeyOff:             "Off",
		KeyTime:            "Time",
		KeyScore:           "Score",
		KeyPaused:          "Paused",
		KeyExitTitle:       "Leave the game?",
		KeyExitMessage:     "Your progress in this round will be lost.",
		KeyYes:             "Yes",
		KeyNo:              "No",
		KeyGameOver:        "Game over!",
		KeyResults:         "Results",
		KeyPlayer:          "Player",
		KeyFinalScore:      "Final score",
		KeyTimePlayed:      "Time played",
		KeySeconds:         "seconds",
		KeyNewRecord:       "New record!",
		KeyPlayAgain:       "Play again",
		KeyShareScore:      "Share score",
		KeyShareOpened:     "Opened in your browser",
		KeyShareCopied:     "Copied to clipboard",
		KeyShareScan:       "Scan to share",
		KeyBestScores:      "Best scores",
		KeyNoScores:        "No scores yet",
		KeyToastScore:      "+%d points!",
		KeyToastTime:       "+%d seconds!",
		KeyToastSlow:       "Slow motion!",
	},
	"tr": {
		KeyWelcomeTitle:    "Wizard Chase",
		KeyWelcomeSubtitle: "Süre bitmeden büyücüyü yakala!",
		KeyRulesTitle:      "Nasıl oynanır",
		KeyRules:           "Büyücüye tıkla, %d puan kazan. Güçlendiriciler +%d puan veya +%d saniye verir.",
		KeyNameHint:        "Adını gir",
		KeyStartGame:       "Oyuna başla",
		KeyNameRequired:    "Lütfen önce adını gir",
		KeySettings:        "Ayarlar",
		KeyLanguage:        "Dil",
		KeyAudioSettings:   "Ses",
		KeyMusic:           "Arka plan müziği",
		KeySound:           "Ses efektleri",
		KeyOn:              "Açık",
		KeyOff:             "Kapalı",
		KeyTime:            "Süre",
		KeyScore:           "Puan",
		KeyPaused:          "Duraklatıldı",
		KeyExitTitle:       "Oyundan çıkılsın mı?",
		KeyExitMessage:     "Bu turdaki ilerlemen kaybolacak.",
		KeyYes:             "Evet",
		KeyNo:              "Hayır",
		KeyGameOver:        "Oyun bitti!",
		KeyResults:         "Sonuçlar",
		KeyPlayer:          "Oyuncu",
		KeyFinalScore:      "Final puanı",
		KeyTimePlayed:      "Oynanan süre",
		KeySeconds:         "saniye",
		KeyNewRecord:       "Yeni rekor!",
		KeyPlayAgain:       "Tekrar oyna",
		KeyShareScore:      "Skoru paylaş",
		KeyShareOpened:     "Tarayıcıda açıldı",
		KeyShareCopied:     "Panoya kopyalandı",
		KeyShareScan:       "Paylaşmak için tara",
		KeyBestScores:      "En iyi skorlar",
		KeyNoScores:        "Henüz skor yok",
		KeyToastScore:      "+%d puan!",
		KeyToastTime:       "+%d saniye!",
		KeyToastSlow:       "Ağır çekim!",
	},
	"zh": {
		KeyWelcomeTitle:    "追捕巫师",
		KeyWelcomeSubtitle: "在时间耗尽前抓住巫师！",
		KeyRulesTitle:      "游戏规则",
		KeyRules:           "点击巫师得 %d 分。道具可获得 +%d 分或 +%d 秒。",
		KeyNameHint:        "输入你的名字",
		KeyStartGame:       "开始游戏",
		KeyNameRequired:    "请先输入名字",
		KeySettings:        "设置",
		KeyLanguage:        "语言",
		KeyAudioSettings:   "音频",
		KeyMusic:           "背景音乐",
		KeySound:           "音效",
		KeyOn:              "开",
		KeyOff:             "关",
		KeyTime:            "时间",
		KeyScore:           "得分",
		KeyPaused:          "已暂停",
		KeyExitTitle:       "退出游戏？",
		KeyExitMessage:     "本轮进度将会丢失。",
		KeyYes:             "是",
		KeyNo:              "否",
		KeyGameOver:        "游戏结束！",
		KeyResults:         "结果",
		KeyPlayer:          "玩家",
		KeyFinalScore:      "最终得分",
		KeyTimePlayed:      "游戏时长",
		KeySeconds:         "秒",
		KeyNewRecord:       "新纪录！",
		KeyPlayAgain:       "再玩一次",
		KeyShareScore:      "分享得分",
		KeyShareOpened:     "已在浏览器中打开",
		KeyShareCopied:     "已复制到剪贴板",
		KeyShareScan:       "扫码分享",
		KeyBestScores:      "最高分",
		KeyNoScores:        "暂无得分",
		KeyToastScore:      "+%d 分！",
		KeyToastTime:       "+%d 秒！",
		KeyToastSlow:       "慢动作！",
	},
	"ja": {
		KeyWelcomeTitle:    "ウィザード・チェイス",
		KeyWelcomeSubtitle: "時間切れになる前に魔法使いを捕まえよう！",
		KeyRulesTitle:      "遊び方",
		KeyRules:           "魔法使いをクリックで %d 点。パワーアップで +%d 点または +%d 秒。",
		KeyNameHint:        "名前を入力",
		KeyStartGame:       "ゲーム開始",
		KeyNameRequired:    "先に名前を入力してください",
		KeySettings:        "設定",
		KeyLanguage:        "言語",
		KeyAudioSettings:   "オーディオ",
		KeyMusic:           "BGM",
		KeySound:           "効果音",
		KeyOn:              "オン",
		KeyOff:             "オフ",
		KeyTime:            "時間",
		KeyScore:           "スコア",
		KeyPaused:          "一時停止中",
		KeyExitTitle:       "ゲームをやめますか？",
		KeyExitMessage:     "このラウンドの進行状況は失われます。",
		KeyYes:             "はい",
		KeyNo:              "いいえ",
		KeyGameOver:        "ゲームオーバー！",
		KeyResults:         "結果",
		KeyPlayer:          "プレイヤー",
		KeyFinalScore:      "最終スコア",
		KeyTimePlayed:      "プレイ時間",
		KeySeconds:         "秒",
		KeyNewRecord:       "新記録！",
		KeyPlayAgain:       "もう一度遊ぶ",
		KeyShareScore:      "スコアを共有",
		KeyShareOpened:     "ブラウザで開きました",
		KeyShareCopied:     "クリップボードにコピーしました",
		KeyShareScan:       "スキャンして共有",
		KeyBestScores:      "ハイスコア",
		KeyNoScores:        "まだスコアがありません",
		KeyToastScore:      "+%d 点！",
		KeyToastTime:       "+%d 秒！",
		KeyToastSlow:       "スローモーション！",
	},
	"es": {
		KeyWelcomeTitle:    "Wizard Chase",
		KeyWelcomeSubtitle: "¡Atrapa al mago antes de que se acabe el tiempo!",
		KeyRulesTitle:      "Cómo jugar",
		KeyRules:           "Haz clic en el mago para ganar %d puntos. Los potenciadores dan +%d puntos o +%d segundos.",
		KeyNameHint:        "Escribe tu nombre",
		KeyStartGame:       "Empezar",
		KeyNameRequired:    "Primero escribe tu nombre",
		KeySettings:        "Ajustes",
		KeyLanguage:        "Idioma",
		KeyAudioSettings:   "Audio",
		KeyMusic:           "Música de fondo",
		KeySound:           "Efectos de sonido",
		KeyOn:              "Sí",
		KeyOff:             "No",
		KeyTime:            "Tiempo",
		KeyScore:           "Puntos",
		KeyPaused:          "En pausa",
		KeyExitTitle:       "¿Salir del juego?",
		KeyExitMessage:     "Se perderá el progreso de esta ronda.",
		KeyYes:             "Sí",
		KeyNo:              "No",
		KeyGameOver:        "¡Fin del juego!",
		KeyResults:         "Resultados",
		KeyPlayer:          "Jugador",
		KeyFinalScore:      "Puntuación final",
		KeyTimePlayed:      "Tiempo jugado",
		KeySeconds:         "segundos",
		KeyNewRecord:       "¡Nuevo récord!",
		KeyPlayAgain:       "Jugar de nuevo",
		KeyShareScore:      "Compartir",
		KeyShareOpened:     "Abierto en el navegador",
		KeyShareCopied:     "Copiado al portapapeles",
		KeyShareScan:       "Escanea para compartir",
		KeyBestScores:      "Mejores puntuaciones",
		KeyNoScores:        "Aún no hay puntuaciones",
		KeyToastScore:      "¡+%d puntos!",
		KeyToastTime:       "¡+%d segundos!",
		KeyToastSlow:       "¡Cámara lenta!",
	},
	"ko": {
		KeyWelcomeTitle:    "위저드 체이스",
		KeyWelcomeSubtitle: "시간이 끝나기 전에 마법사를 잡으세요!",
		KeyRulesTitle:      "게임 방법",
		KeyRules:           "마법사를 클릭하면 %d점. 파워업은 +%d점 또는 +%d초를 줍니다.",
		KeyNameHint:        "이름을 입력하세요",
		KeyStartGame:       "게임 시작",
		KeyNameRequired:    "먼저 이름을 입력하세요",
		KeySettings:        "설정",
		KeyLanguage:        "언어",
		KeyAudioSettings:   "오디오",
		KeyMusic:           "배경 음악",
		KeySound:           "효과음",
		KeyOn:              "켜짐",
		KeyOff:             "꺼짐",
		KeyTime:            "시간",
		KeyScore:           "점수",
		KeyPaused:          "일시 정지",
		KeyExitTitle:       "게임을 종료할까요?",
		KeyExitMessage:     "이번 라운드의 진행 상황이 사라집니다.",
		KeyYes:             "예",
		KeyNo:              "아니요",
		KeyGameOver:        "게임 오버!",
		KeyResults:         "결과",
		KeyPlayer:          "플레이어",
		KeyFinalScore:      "최종 점수",
		KeyTimePlayed:      "플레이 시간",
		KeySeconds:         "초",
		KeyNewRecord:       "신기록!",
		KeyPlayAgain:       "다시 하기",
		KeyShareScore:      "점수 공유",
		KeyShareOpened:     "브라우저에서 열었습니다",
		KeyShareCopied:     "클립보드에 복사했습니다",
		KeyShareScan:       "스캔하여 공유",
		KeyBestScores:      "최고 점수",
		KeyNoScores:        "아직 점수가 없습니다",
		KeyToastScore:      "+%d점!",
		KeyToastTime:       "+%d초!",
		KeyToastSlow:       "슬로 모션!",
	},
	"id": {
		KeyWelcomeTitle:    "Wizard Chase",
		KeyWelcomeSubtitle: "Tangkap penyihir sebelum waktu habis!",
		KeyRulesTitle:      "Cara bermain",
		KeyRules:           "Klik penyihir untuk %d poin. Power-up memberi +%d poin atau +%d detik.",
		KeyNameHint:        "Masukkan namamu",
		KeyStartGame:       "Mulai permainan",
		KeyNameRequired:    "Masukkan namamu terlebih dahulu",
		KeySettings:        "Pengaturan",
		KeyLanguage:        "Bahasa",
		KeyAudioSettings:   "Audio",
		KeyMusic:           "Musik latar",
		KeySound:           "Efek suara",
		KeyOn:              "Aktif",
		KeyOff:             "Mati",
		KeyTime:            "Waktu",
		KeyScore:           "Skor",
		KeyPaused:          "Dijeda",
		KeyExitTitle:       "Keluar dari permainan?",
		KeyExitMessage:     "Kemajuan di ronde ini akan hilang.",
		KeyYes:             "Ya",
		KeyNo:              "Tidak",
		KeyGameOver:        "Permainan selesai!",
		KeyResults:         "Hasil",
		KeyPlayer:          "Pemain",
		KeyFinalScore:      "Skor akhir",
		KeyTimePlayed:      "Waktu bermain",
		KeySeconds:         "detik",
		KeyNewRecord:       "Rekor baru!",
		KeyPlayAgain:       "Main lagi",
		KeyShareScore:      "Bagikan skor",
		KeyShareOpened:     "Dibuka di peramban",
		KeyShareCopied:     "Disalin ke papan klip",
		KeyShareScan:       "Pindai untuk berbagi",
		KeyBestScores:      "Skor terbaik",
		KeyNoScores:        "Belum ada skor",
		KeyToastScore:      "+%d poin!",
		KeyToastTime:       "+%d detik!",
		KeyToastSlow:       "Gerak lambat!",
	},
	"vi": {
		KeyWelcomeTitle:    "Wizard Chase",
		KeyWelcomeSubtitle: "Bắt phù thủy trước khi hết giờ!",
		KeyRulesTitle:      "Cách chơi",
		KeyRules:           "Nhấp vào phù thủy để được %d điểm. Vật phẩm cho +%d điểm hoặc +%d giây.",
		KeyNameHint:        "Nhập tên của bạn",
		KeyStartGame:       "Bắt đầu",
		KeyNameRequired:    "Vui lòng nhập tên trước",
		KeySettings:        "Cài đặt",
		KeyLanguage:        "Ngôn ngữ",
		KeyAudioSettings:   "Âm thanh",
		KeyMusic:           "Nhạc nền",
		KeySound:           "Hiệu ứng âm thanh",
		KeyOn:              "Bật",
		KeyOff:             "Tắt",
		KeyTime:            "Thời gian",
		KeyScore:           "Điểm",
		KeyPaused:          "Tạm dừng",
		KeyExitTitle:       "Thoát trò chơi?",
		KeyExitMessage:     "Tiến trình của vòng này sẽ bị mất.",
		KeyYes:             "Có",
		KeyNo:              "Không",
		KeyGameOver:        "Kết thúc!",
		KeyResults:         "Kết quả",
		KeyPlayer:          "Người chơi",
		KeyFinalScore:      "Điểm cuối cùng",
		KeyTimePlayed:      "Thời gian chơi",
		KeySeconds:         "giây",
		KeyNewRecord:       "Kỷ lục mới!",
		KeyPlayAgain:       "Chơi lại",
		KeyShareScore:      "Chia sẻ điểm",
		KeyShareOpened:     "Đã mở trong trình duyệt",
		KeyShareCopied:     "Đã sao chép vào bộ nhớ tạm",
		KeyShareScan:       "Quét để chia sẻ",
		KeyBestScores:      "Điểm cao nhất",
		KeyNoScores:        "Chưa có điểm",
		KeyToastScore:      "+%d điểm!",
		KeyToastTime:       "+%d giây!",
		KeyToastSlow:       "Chuyển động chậm!",
	},
	"ru": {
		KeyWelcomeTitle:    "Wizard Chase",
		KeyWelcomeSubtitle: "Поймай волшебника, пока не вышло время!",
		KeyRulesTitle:      "Как играть",
		KeyRules:           "Нажми на волшебника, чтобы получить %d очков. Бонусы дают +%d очков или +%d секунд.",
		KeyNameHint:        "Введи своё имя",
		KeyStartGame:       "Начать игру",
		KeyNameRequired:    "Сначала введи имя",
		KeySettings:        "Настройки",
		KeyLanguage:        "Язык",
		KeyAudioSettings:   "Звук",
		KeyMusic:           "Фоновая музыка",
		KeySound:           "Звуковые эффекты",
		KeyOn:              "Вкл",
		KeyOff:             "Выкл",
		KeyTime:            "Время",
		KeyScore:           "Очки",
		KeyPaused:          "Пауза",
		KeyExitTitle:       "Выйти из игры?",
		KeyExitMessage:     "Прогресс этого раунда будет потерян.",
		KeyYes:             "Да",
		KeyNo:              "Нет",
		KeyGameOver:        "Игра окончена!",
		KeyResults:         "Результаты",
		KeyPlayer:          "Игрок",
		KeyFinalScore:      "Итоговый счёт",
		KeyTimePlayed:      "Время игры",
		KeySeconds:         "секунд",
		KeyNewRecord:       "Новый рекорд!",
		KeyPlayAgain:       "Играть снова",
		KeyShareScore:      "Поделиться",
		KeyShareOpened:     "Открыто в браузере",
		KeyShareCopied:     "Скопировано в буфер обмена",
		KeyShareScan:       "Сканируй, чтобы поделиться",
		KeyBestScores:      "Лучшие результаты",
		KeyNoScores:        "Пока нет результатов",
		KeyToastScore:      "+%d очков!",
		KeyToastTime:       "+%d секунд!",
		KeyToastSlow:       "Замедление!",
	},
}
