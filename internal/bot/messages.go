package bot

const (
	menuButtonTasks = "📋 Мои задачи"
	menuButtonHelp  = "ℹ️ Помощь"

	buttonComplete = "✅ Завершить"
	buttonDetails  = "📋 Подробности"

	callbackCompletePrefix = "task_complete_"
	callbackDetailsPrefix  = "task_details_"
)

const (
	msgGreeting = "Привет, %s! 👋\n\n" +
		"Я бот для управления задачами в команде.\n" +
		"Для начала работы необходимо авторизоваться.\n\n" +
		"Пожалуйста, введите ваш email для аутентификации:"

	msgAuthSuccess = "✅ Авторизация прошла успешно!\n\n" + msgCommands

	msgAuthRejected = "❌ Ошибка авторизации. Пожалуйста, проверьте ваш email " +
		"и убедитесь, что вы зарегистрированы в системе.\n\n" +
		"Попробуйте еще раз:"

	msgAuthFailed = "❌ Произошла ошибка при авторизации. Попробуйте позже."

	msgCommands = "Доступные команды:\n" +
		"/menu - Главное меню\n" +
		"/tasks - Мои задачи\n" +
		"/help - Помощь"

	msgMainMenu     = "Главное меню:\n\nВыберите действие:"
	msgNeedAuth     = "❌ Сначала необходимо авторизоваться. Используйте /start"
	msgNoTasks      = "📭 У вас нет назначенных задач"
	msgTasksFailed  = "❌ Ошибка при загрузке задач"
	msgUnknown      = "Не понимаю команду.\n\n" + msgCommands
	msgCallbackAuth = "❌ Ошибка авторизации"

	msgTaskCompleted     = "✅ Задача завершена!"
	msgCompleteFailed    = "❌ Ошибка при завершении задачи"
	msgDetailsFailed     = "❌ Ошибка при загрузке задачи"
	msgUnsupportedAction = "Неизвестное действие"
)
