package catalog

// tools is the tools library. Descriptions are authored in French.
var tools = []Tool{
	// Outils système Linux
	{Name: "ls", Category: CategorySystem, Description: "Liste le contenu des répertoires.", Popular: true},
	{Name: "cd", Category: CategorySystem, Description: "Change le répertoire courant.", Popular: true},
	{Name: "grep", Category: CategorySystem, Description: "Recherche de motifs dans le texte.", Popular: true},
	{Name: "cat", Category: CategorySystem, Description: "Affiche le contenu de fichiers.", Popular: true},
	{Name: "chmod", Category: CategorySystem, Description: "Modifie les permissions de fichiers.", Popular: true},
	{Name: "chown", Category: CategorySystem, Description: "Modifie le propriétaire de fichiers.", Popular: true},
	{Name: "ps", Category: CategorySystem, Description: "Affiche les processus en cours.", Popular: true},
	{Name: "kill", Category: CategorySystem, Description: "Envoie un signal à un processus.", Popular: true},
	{Name: "systemctl", Category: CategorySystem, Description: "Contrôle le système systemd et les services.", Popular: true},
	{Name: "ip", Category: CategorySystem, Description: "Affiche/Manipule le routage, les périphériques, les tunnels.", Popular: true},
	{Name: "iptables", Category: CategorySystem, Description: "Outil d'administration pour le filtrage de paquets IPv4.", Popular: true},
	{Name: "ufw", Category: CategorySystem, Description: "Uncomplicated Firewall - Pare-feu simplifié.", Popular: true},
	{Name: "fdisk", Category: CategorySystem, Description: "Manipulateur de table de partitions.", Popular: true},

	// Langages & bibliothèques
	{Name: "python3", Category: CategoryProgramming, Description: "Interpréteur Python 3.", Popular: true},
	{Name: "pip", Category: CategoryProgramming, Description: "Gestionnaire de paquets Python.", Popular: true},
	{Name: "scapy", Category: CategoryProgramming, Description: "Bibliothèque Python pour la manipulation de paquets.", Popular: true},
	{Name: "requests", Category: CategoryProgramming, Description: "Bibliothèque HTTP pour Python.", Popular: true},
	{Name: "paramiko", Category: CategoryProgramming, Description: "Implémentation SSHv2 pour Python."},

	// Outils hardware (diagnostic)
	{Name: "lshw", Category: CategoryHardware, Description: "Liste le matériel."},
	{Name: "lspci", Category: CategoryHardware, Description: "Affiche les périphériques PCI."},
	{Name: "lsusb", Category: CategoryHardware, Description: "Affiche les périphériques USB."},
	{Name: "dmidecode", Category: CategoryHardware, Description: "Table de décodage DMI (infos BIOS/Matériel)."},

	// Outils cryptographie
	{Name: "openssl", Category: CategoryPassword, Description: "Boîte à outils robuste pour SSL/TLS et crypto.", Popular: true},
	{Name: "gpg", Category: CategoryPassword, Description: "Outil de chiffrement et de signature (OpenPGP).", Popular: true},
	{Name: "hashcat", Category: CategoryPassword, Description: "Outil de récupération de mot de passe (Hash cracker).", Popular: true},
	{Name: "john", Category: CategoryPassword, Description: "Crackeur de mots de passe (John the Ripper).", Popular: true},

	// Outils kernel & debugging
	{Name: "strace", Category: CategoryReverseEng, Description: "Traceur d'appels système et de signaux.", Popular: true},
	{Name: "gdb", Category: CategoryReverseEng, Description: "Le débogueur GNU.", Popular: true},
	{Name: "dmesg", Category: CategorySystem, Description: "Affiche les messages du tampon circulaire du noyau.", Popular: true},
	{Name: "lsmod", Category: CategorySystem, Description: "Affiche l'état des modules du noyau Linux."},
	{Name: "insmod", Category: CategorySystem, Description: "Insère un module dans le noyau Linux."},

	// Outils offensifs Kali
	{Name: "nmap", Category: CategoryInfoGathering, Description: "Le standard du scan réseau.", Popular: true},
	{Name: "metasploit-framework", Category: CategoryExploitation, Description: "Framework de développement d'exploits.", Popular: true},
	{Name: "wireshark", Category: CategorySniffing, Description: "Analyseur de protocole réseau.", Popular: true},
	{Name: "burpsuite", Category: CategoryWebApp, Description: "Plateforme de test de sécurité web.", Popular: true},
	{Name: "aircrack-ng", Category: CategoryWireless, Description: "Suite complète audit Wi-Fi.", Popular: true},
	{Name: "hydra", Category: CategoryPassword, Description: "Crackeur de login réseau.", Popular: true},
	{Name: "sqlmap", Category: CategoryDatabase, Description: "Injection SQL automatique.", Popular: true},
	{Name: "nikto", Category: CategoryVulnAnalysis, Description: "Scanner de serveur web.", Popular: true},
	{Name: "netcat", Category: CategorySniffing, Description: "Le couteau suisse TCP/IP.", Popular: true},
}
