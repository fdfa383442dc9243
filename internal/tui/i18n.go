package tui

import "github.com/MKhiriev/veepo/models"

var translations = map[models.Language]map[string]string{
	models.LanguagePT: {
		"menu.title":            "MENU PRINCIPAL",
		"menu.login":            "Entrar",
		"menu.register":         "Criar conta",
		"menu.action":           "Ação",
		"auth.login.title":      "ENTRAR",
		"auth.register.title":   "CRIAR CONTA",
		"auth.field":            "Campo",
		"auth.value":            "Valor",
		"auth.email":            "E-mail",
		"auth.password":         "Senha",
		"auth.name":             "Nome",
		"auth.submit":           "Enviar",
		"auth.required":         "E-mail e senha são obrigatórios",
		"auth.short":            "A senha deve ter pelo menos 6 caracteres",
		"tab.dashboard":         "Painel",
		"tab.feedbacks":         "Feedbacks",
		"tab.notifications":     "Notificações",
		"tab.qr_codes":          "QR Codes",
		"tab.preferences":       "Preferências",
		"dash.total":            "Total de feedbacks",
		"dash.average":          "Nota média",
		"dash.active_qr":        "QR codes ativos",
		"dash.pending":          "Pendentes",
		"dash.nps":              "Tendência NPS",
		"dash.benchmark":        "Comparação com o setor",
		"dash.recent":           "Feedbacks recentes",
		"dash.range":            "Período",
		"dash.days":             "dias",
		"dash.no_benchmark":     "Sem referência do setor",
		"feedback.active":       "Ativos",
		"feedback.archived":     "Arquivados",
		"feedback.empty":        "Nenhum feedback",
		"notif.empty":           "Nenhuma notificação",
		"notif.unread":          "não lidas",
		"qr.empty":              "Nenhum QR code",
		"qr.active":             "ativo",
		"qr.inactive":           "inativo",
		"qr.scans":              "leituras",
		"qr.new":                "Novo QR code",
		"qr.copied":             "URL copiada",
		"qr.description":        "Descrição",
		"qr.confirm_delete":     "Pressione ctrl+d novamente para excluir",
		"form.required":         "Preencha o primeiro campo",
		"prefs.theme":           "Tema",
		"prefs.language":        "Idioma",
		"prefs.name":            "Nome de exibição",
		"prefs.email":           "E-mail",
		"prefs.saved":           "Salvo",
		"status.loading":        "Carregando...",
		"status.done":           "Feito",
		"status.error":          "Erro",
		"status.server_offline": "Sem rede ou servidor indisponível",
		"status.unauthorized":   "E-mail ou senha incorretos, ou a sessão expirou",
		"status.conflict":       "Este e-mail já está cadastrado",
		"status.signed_out":     "Entre novamente para continuar",
		"keys.menu":             "enter: escolher │ ↑/↓: navegar │ g: idioma │ v: versão",
		"keys.auth":             "esc: voltar │ tab: próximo campo │ enter: confirmar",
		"keys.main":             "tab: próxima aba │ ctrl+r: atualizar │ L: sair da conta │ q: fechar",
		"keys.dashboard":        "p: período",
		"keys.feedbacks":        "↑/↓: navegar │ v: ativos/arquivados │ x: arquivar │ m: respondido",
		"keys.notifications":    "↑/↓: navegar │ enter: marcar lida │ A: marcar todas",
		"keys.qr_codes":         "↑/↓: navegar │ c: copiar URL │ espaço: ativar │ n: novo │ ctrl+d: excluir",
		"keys.preferences":      "t: tema │ g: idioma │ e: editar nome",
		"keys.form":             "esc: cancelar │ enter: salvar",
		"keys.back":             "esc: voltar",
		"keys.exit":             "ctrl+c: sair",
		"build.title":           "SOBRE O APLICATIVO",
		"build.version":         "Versão",
		"build.date":            "Data",
		"build.commit":          "Commit",
		"tab.campaigns":          "Campanhas",
		"tab.directory":          "Diretório",
		"tab.profile":            "Perfil",
		"tab.billing":            "Planos",
		"dash.map":               "Feedbacks no mapa",
		"dash.map_points":        "feedbacks com localização",
		"dash.map_empty":         "Nenhum feedback com localização",
		"campaign.empty":         "Nenhuma campanha",
		"directory.search":       "Busca",
		"directory.empty":        "Nenhum prestador encontrado",
		"directory.sort_newest":  "mais recentes",
		"directory.sort_rating":  "melhor nota",
		"directory.sort_ranking": "ranking",
		"profile.business_name":  "Nome da empresa",
		"profile.segment":        "Segmento",
		"profile.state":          "UF",
		"profile.city":           "Cidade",
		"profile.cnae":           "CNAE",
		"profile.plan":           "Plano",
		"profile.empty":          "Perfil ainda não criado. Pressione e para preencher",
		"profile.unknown_state":  "UF desconhecida",
		"profile.unknown_city":   "Cidade não encontrada nesta UF",
		"profile.unknown_cnae":   "CNAE desconhecido",
		"billing.monthly":        "Mensal",
		"billing.annual":         "Anual",
		"billing.contact":        "Fale com vendas",
		"billing.checkout":       "Checkout aberto",
		"prefs.server":           "Versão do servidor",
		"keys.campaigns":         "↑/↓: navegar │ espaço: ativar │ ctrl+d: excluir",
		"keys.directory":         "↑/↓: navegar │ /: buscar │ o: ordenar │ u: UF",
		"keys.profile":           "e: editar perfil",
		"keys.billing":           "↑/↓: navegar │ a: mensal/anual │ enter: assinar",
	},
	models.LanguageEN: {
		"menu.title":            "MAIN MENU",
		"menu.login":            "Sign in",
		"menu.register":         "Sign up",
		"menu.action":           "Action",
		"auth.login.title":      "SIGN IN",
		"auth.register.title":   "SIGN UP",
		"auth.field":            "Field",
		"auth.value":            "Value",
		"auth.email":            "Email",
		"auth.password":         "Password",
		"auth.name":             "Name",
		"auth.submit":           "Submit",
		"auth.required":         "Email and password are required",
		"auth.short":            "Password must be at least 6 characters",
		"tab.dashboard":         "Dashboard",
		"tab.feedbacks":         "Feedbacks",
		"tab.notifications":     "Notifications",
		"tab.qr_codes":          "QR Codes",
		"tab.preferences":       "Preferences",
		"dash.total":            "Total feedbacks",
		"dash.average":          "Average rating",
		"dash.active_qr":        "Active QR codes",
		"dash.pending":          "Pending",
		"dash.nps":              "NPS trend",
		"dash.benchmark":        "Industry comparison",
		"dash.recent":           "Recent feedbacks",
		"dash.range":            "Range",
		"dash.days":             "days",
		"dash.no_benchmark":     "No industry benchmark",
		"feedback.active":       "Active",
		"feedback.archived":     "Archived",
		"feedback.empty":        "No feedbacks",
		"notif.empty":           "No notifications",
		"notif.unread":          "unread",
		"qr.empty":              "No QR codes",
		"qr.active":             "active",
		"qr.inactive":           "inactive",
		"qr.scans":              "scans",
		"qr.new":                "New QR code",
		"qr.copied":             "URL copied",
		"qr.description":        "Description",
		"qr.confirm_delete":     "Press ctrl+d again to delete",
		"form.required":         "The first field is required",
		"prefs.theme":           "Theme",
		"prefs.language":        "Language",
		"prefs.name":            "Display name",
		"prefs.email":           "Email",
		"prefs.saved":           "Saved",
		"status.loading":        "Loading...",
		"status.done":           "Done",
		"status.error":          "Error",
		"status.server_offline": "No network or server unavailable",
		"status.unauthorized":   "Wrong email or password, or the session expired",
		"status.conflict":       "This email is already registered",
		"status.signed_out":     "Sign in again to continue",
		"keys.menu":             "enter: select │ ↑/↓: navigate │ g: language │ v: version",
		"keys.auth":             "esc: back │ tab: next field │ enter: confirm",
		"keys.main":             "tab: next tab │ ctrl+r: refresh │ L: sign out │ q: close",
		"keys.dashboard":        "p: range",
		"keys.feedbacks":        "↑/↓: navigate │ v: active/archived │ x: archive │ m: responded",
		"keys.notifications":    "↑/↓: navigate │ enter: mark read │ A: mark all",
		"keys.qr_codes":         "↑/↓: navigate │ c: copy URL │ space: toggle │ n: new │ ctrl+d: delete",
		"keys.preferences":      "t: theme │ g: language │ e: edit name",
		"keys.form":             "esc: cancel │ enter: save",
		"keys.back":             "esc: back",
		"keys.exit":             "ctrl+c: quit",
		"build.title":           "ABOUT",
		"build.version":         "Version",
		"build.date":            "Date",
		"build.commit":          "Commit",
		"tab.campaigns":          "Campaigns",
		"tab.directory":          "Directory",
		"tab.profile":            "Profile",
		"tab.billing":            "Plans",
		"dash.map":               "Feedback map",
		"dash.map_points":        "geolocated feedbacks",
		"dash.map_empty":         "No geolocated feedbacks",
		"campaign.empty":         "No campaigns",
		"directory.search":       "Search",
		"directory.empty":        "No providers found",
		"directory.sort_newest":  "newest",
		"directory.sort_rating":  "best rated",
		"directory.sort_ranking": "ranking",
		"profile.business_name":  "Business name",
		"profile.segment":        "Segment",
		"profile.state":          "State",
		"profile.city":           "City",
		"profile.cnae":           "CNAE",
		"profile.plan":           "Plan",
		"profile.empty":          "No profile yet. Press e to fill it in",
		"profile.unknown_state":  "Unknown state",
		"profile.unknown_city":   "City not found in this state",
		"profile.unknown_cnae":   "Unknown CNAE class",
		"billing.monthly":        "Monthly",
		"billing.annual":         "Annual",
		"billing.contact":        "Contact sales",
		"billing.checkout":       "Checkout opened",
		"prefs.server":           "Server version",
		"keys.campaigns":         "↑/↓: navigate │ space: toggle │ ctrl+d: delete",
		"keys.directory":         "↑/↓: navigate │ /: search │ o: sort │ u: state",
		"keys.profile":           "e: edit profile",
		"keys.billing":           "↑/↓: navigate │ a: monthly/annual │ enter: subscribe",
	},
}

// tr looks key up in lang, falling back to Portuguese and then the key.
func tr(lang models.Language, key string) string {
	if s, ok := translations[lang][key]; ok {
		return s
	}
	if s, ok := translations[models.LanguagePT][key]; ok {
		return s
	}
	return key
}
