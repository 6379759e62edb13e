package model

// User-facing strings, bilingual. The UI relies on the distinction between
// the generic hint and the quota message to decide whether a retry prompt
// makes sense.

// NotUnderstoodMessage is the generic "try different phrasing" hint.
func NotUnderstoodMessage(lang Language) string {
	if lang == LangPT {
		return "Não entendi. Tente: 'Mostrar meu CV' ou 'Baixar minha carta'"
	}
	return "Je n'ai pas compris. Essaie : 'Affiche mon CV' ou 'Télécharge ma lettre'"
}

// QuotaExceededMessage tells the user the daily remote budget is spent.
func QuotaExceededMessage(lang Language) string {
	if lang == LangPT {
		return "Limite de solicitações IA atingido hoje."
	}
	return "Limite de requêtes IA atteinte pour aujourd'hui."
}

// RemoteUnconfiguredMessage explains that the remote tier is disabled because
// no access credential was provisioned.
func RemoteUnconfiguredMessage(lang Language) string {
	if lang == LangPT {
		return "Assistente IA não configurado (modo local apenas)"
	}
	return "Assistant IA non configuré (mode local uniquement)"
}

// RemoteErrorMessage covers transport or service failures of the remote tier.
func RemoteErrorMessage(lang Language) string {
	if lang == LangPT {
		return "Erro de conexão com o assistente IA"
	}
	return "Erreur de connexion à l'assistant IA"
}
