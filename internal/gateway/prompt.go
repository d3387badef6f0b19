package gateway

import (
	"fmt"
	"strings"
)

// systemPrompt is the instructor persona shared by all operations.
// Generated content is in French.
const systemPrompt = `Tu es l'Instructeur Chef de la plateforme Cyber-Hunter.
Tu es un expert absolu en :
1. Administration Système Linux (Kernel, CLI, Permissions, Storage)
2. Architecture Matérielle (CPU, RAM, Boot process)
3. Réseaux TCP/IP (OSI, Protocoles, Routing)
4. Programmation Python pour la Cybersécurité (Socket, Scapy)

TA MISSION : Fournir un contenu éducatif d'une précision chirurgicale.
TON STYLE : Autoritaire mais encourageant, ultra-technique mais clair.
LANGUE : Français.`

func buildGuideUserMessage(toolName string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Rédige un manuel technique complet pour l'outil/commande : %q.\n", toolName))
	b.WriteString(`
Structure requise :
1. **Résumé Technique**: À quoi ça sert ? (Kernel space vs User space si pertinent).
2. **Catégorie**: (ex: SysAdmin, Network, Scripting...)
3. **Syntaxe Complète**: Analyse de la syntaxe de base.
4. **Flags & Options Critiques**: Tableau détaillé des arguments les plus importants.
5. **Laboratoire Pratique (Step-by-Step)**:
   - Cas 1 : Usage standard.
   - Cas 2 : Usage avancé / Expert.
   - Pour chaque cas : Commande exacte, Explication de CHAQUE paramètre, Exemple de sortie (Output) simulée.
6. **Mise en garde**: Risques potentiels (perte de données, détection...).`)

	return b.String()
}

func buildLessonUserMessage(topic, courseContext string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Génère un cours magistral complet et ultra-détaillé sur : %q.\n", topic))
	b.WriteString(fmt.Sprintf("Contexte du module : %q.\n", courseContext))
	b.WriteString(`
RÈGLE D'OR : Si le sujet mentionne des commandes (Linux, Réseau, Python...), tu DOIS expliquer CHAQUE commande, CHAQUE flag et donner des exemples concrets. NE RIEN OUBLIER.

Structure du cours :
1. **Théorie Approfondie**: Fonctionnement interne, protocoles, architecture.
2. **Dictionnaire de Commandes** (Si applicable):
   - Pour CHAQUE commande liée au sujet (ex: ls, cd, grep, ip, socket...):
     - Syntaxe.
     - Arguments clés.
     - Exemple concret.
3. **Démonstration Pratique**: Scénario complet étape par étape.
4. **Sécurité & Bonnes Pratiques**: Comment sécuriser ou optimiser.
5. **Quiz de validation**: 3 questions pour tester la compréhension.`)

	return b.String()
}

func buildScenarioUserMessage(toolName string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Génère un défi technique (mini-CTF ou Tâche Admin) pour l'outil %q.\n", toolName))
	b.WriteString(`
Champs attendus :
- context : Mise en situation (ex: Serveur Linux compromis ou Analyse réseau)
- task : Objectif technique précis (ex: Trouver le PID du processus apache2)
- target : Cible fictive (Fichier, IP, Processus)
- difficulty : "Easy", "Medium" ou "Hard"`)

	return b.String()
}

func buildVideosUserMessage(topic string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Pour le sujet technique %q en Cybersécurité/Informatique, suggère 3 à 4 excellentes ressources vidéo (YouTube) ou sujets de recherche vidéo.\n", topic))
	b.WriteString(`
Pour chaque ressource :
- title : Titre de la vidéo idéale ou du concept
- description : Pourquoi cette vidéo est importante (1 phrase)
- searchQuery : Recherche YouTube optimisée (ex: 'TCP Handshake explained animation')
- duration : "Court (~5min)" ou "Long (~30min)"`)

	return b.String()
}

func buildVerifyUserMessage(toolName string, scenario Scenario, answer string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("CONTEXTE: Exercice sur %s.\n", toolName))
	b.WriteString(fmt.Sprintf("SCÉNARIO: %s\n", scenario.Context))
	b.WriteString(fmt.Sprintf("TÂCHE: %s\n", scenario.Task))
	b.WriteString(fmt.Sprintf("\nCOMMANDE UTILISATEUR: %q\n", answer))
	b.WriteString(fmt.Sprintf(`
Analyse la commande. Est-elle syntaxiquement correcte pour %s ? Résout-elle le problème ?
Sois strict sur les options/flags.

Champs attendus :
- correct : booléen
- message : Feedback court (ex: Accès Refusé ou Succès)
- tips : Explication technique détaillée.`, toolName))

	return b.String()
}

func buildTutorUserMessage(question string) string {
	return fmt.Sprintf("L'utilisateur demande : %q. Réponds comme un expert senior. Donne des détails techniques, des commandes et des exemples.", question)
}
