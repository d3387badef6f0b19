package catalog

// courses is the full training program, ordered Hardware → Réseau → Linux →
// Python → Hacking → Crypto → Kernel. Content is authored in French.
var courses = []CourseModule{
	// Bloc 1 : Hardware & Architecture
	{
		ID:          "mod-hardware",
		Title:       "Module 1 : Hardware & Architecture",
		Difficulty:  DifficultyBeginner,
		Description: "Comprendre le fonctionnement physique d'un ordinateur pour mieux le sécuriser.",
		Topics: []string{
			"CPU & GPU : Architecture, Caches, Pipeline et Threads",
			"Mémoire & Stockage : RAM (DDR4/5), SSD NVMe vs SATA",
			"La Carte Mère : BIOS/UEFI, Bus PCIe et Chipset",
			"Processus de Démarrage (Boot Process)",
			"Alimentation et Refroidissement (Gestion thermique)",
		},
	},

	// Bloc 2 : Réseaux informatiques
	{
		ID:          "mod-net-fondamentaux",
		Title:       "Module 2 : Architecture Réseaux",
		Difficulty:  DifficultyBeginner,
		Description: "Les fondations théoriques et protocoles essentiels de la communication.",
		Topics: []string{
			"Modèles OSI (7 couches) vs TCP/IP (4 couches)",
			"Adressage IPv4, IPv6 et MAC",
			"Protocoles de Transport : TCP vs UDP",
			"Services Applicatifs : DNS, DHCP, HTTP/S, FTP, SSH",
			"Infrastructures : Switchs, Routeurs et Pare-feu",
		},
	},
	{
		ID:          "mod-net-avance",
		Title:       "Module 3 : Réseaux Avancés",
		Difficulty:  DifficultyIntermediate,
		Description: "Routage, segmentation et analyse de trafic approfondie.",
		Topics: []string{
			"Routage Dynamique (OSPF, BGP) & Statique",
			"Segmentation : VLANs et Sous-réseaux (Subnetting)",
			"NAT/PAT, QoS et Multicast",
			"Analyse de paquets avec Wireshark (Inspection OSI)",
			"Outils CLI Réseau (ping, traceroute, netstat, tcpdump)",
		},
	},

	// Bloc 3 : Administration Linux
	{
		ID:          "mod-linux-base",
		Title:       "Module 4 : Linux - Les Bases",
		Difficulty:  DifficultyBeginner,
		Description: "Installation, philosophie et maîtrise de la ligne de commande.",
		Topics: []string{
			"Noyau, Distributions (Debian/RedHat) et FHS",
			"Navigation CLI (ls, cd, pwd, mkdir, cp, mv, rm)",
			"Visualisation de fichiers (cat, less, head, tail, grep)",
			"Gestion des Permissions (chmod, chown, UGO)",
			"Flux et Redirections (>, >>, |, 2>)",
		},
	},
	{
		ID:          "mod-linux-admin",
		Title:       "Module 5 : Linux - Administration",
		Difficulty:  DifficultyIntermediate,
		Description: "Gestion des utilisateurs, processus, stockage et services.",
		Topics: []string{
			"Utilisateurs et Groupes (useradd, passwd, /etc/shadow)",
			"Gestion des Processus (ps, top, kill, jobs)",
			"Gestion des Paquets (APT, DNF, Pacman)",
			"Stockage : Partitionnement (fdisk), Montage et LVM",
			"Services et Init : Systemd (systemctl, journalctl)",
		},
	},
	{
		ID:          "mod-linux-secu",
		Title:       "Module 6 : Linux - Sécurité & Réseau",
		Difficulty:  DifficultyAdvanced,
		Description: "Durcissement système et configuration réseau sécurisée.",
		Topics: []string{
			"Configuration Réseau (ip, nmcli) et SSH (Clés, Config)",
			"Pare-feu : Iptables, NFTables et UFW",
			"Sécurité MAC : SELinux vs AppArmor",
			"Gestion des Logs (/var/log) et Audit",
			"Automatisation avec Cron et Backups (rsync, tar)",
		},
	},

	// Bloc 4 : Programmation Python
	{
		ID:          "mod-python-base",
		Title:       "Module 7 : Python pour la Cyber",
		Difficulty:  DifficultyBeginner,
		Description: "Bases du langage Python appliquées à la sécurité.",
		Topics: []string{
			"Syntaxe, Variables et Types de données",
			"Structures de contrôle (if, loops) et Fonctions",
			"Manipulation de Fichiers et Context Managers",
			"Programmation Orientée Objet (Classes, Héritage)",
			"Modules et Environnements Virtuels (venv, pip)",
		},
	},
	{
		ID:          "mod-python-ops",
		Title:       "Module 8 : Scripting Offensif Python",
		Difficulty:  DifficultyAdvanced,
		Description: "Création d'outils de sécurité et bibliothèques spécialisées.",
		Topics: []string{
			"Programmation Réseau bas niveau (Socket)",
			"Manipulation de paquets avec Scapy",
			"Requêtes Web et Brute-force avec Requests",
			"SSH Automatisé avec Paramiko",
			"Analyse de données (Logs) avec Pandas et Regex",
		},
	},

	// Bloc 5 : Hacking & Kali tools
	{
		ID:          "mod-recon",
		Title:       "Module 9 : Reconnaissance & OSINT",
		Difficulty:  DifficultyIntermediate,
		Description: "Collecte d'informations passives et actives.",
		Topics:      []string{"Google Dorking", "Recherche DNS (TheHarvester)", "Shodan & Maltego"},
	},
	{
		ID:          "mod-scan",
		Title:       "Module 10 : Scanning & Enumération",
		Difficulty:  DifficultyIntermediate,
		Description: "Cartographie réseau et détection de failles.",
		Topics:      []string{"Nmap Expert", "Nessus/OpenVAS", "Énumération SMB/SNMP"},
	},
	{
		ID:          "mod-exploit",
		Title:       "Module 11 : Exploitation & Post-Exploit",
		Difficulty:  DifficultyExpert,
		Description: "Metasploit, Reverse Shells et PrivEsc.",
		Topics:      []string{"Metasploit Framework", "Escalade de privilèges", "Pivoting & Tunneling"},
	},

	// Bloc 6 : Cryptographie & sécurité
	{
		ID:          "mod-crypto-fondamentaux",
		Title:       "Module 12 : Cryptographie Appliquée",
		Difficulty:  DifficultyIntermediate,
		Description: "Maîtrise des algorithmes de chiffrement modernes et de la PKI.",
		Topics: []string{
			"Concepts : Symétrique vs Asymétrique, Hachage et Salt",
			"Algorithmes Standards : AES, RSA, ECC et ChaCha20",
			"Fonctions de Hachage : SHA-256, SHA-3, Bcrypt et Collisions",
			"Infrastructure à Clés Publiques (PKI) : Certificats X.509, CA et Trust Chain",
			"Protocoles Sécurisés : TLS 1.3 Handshake et SSH",
		},
	},
	{
		ID:          "mod-crypto-attaque",
		Title:       "Module 13 : Cryptanalyse & Attaques",
		Difficulty:  DifficultyExpert,
		Description: "Analyse des faiblesses et attaques sur les implémentations cryptographiques.",
		Topics: []string{
			"Attaques sur le chiffrement : Padding Oracle, Known-Plaintext",
			"Cassage de Hash : Rainbow Tables, John the Ripper & Hashcat",
			"Faiblesses d'implémentation : Générateurs aléatoires (RNG) faibles",
			"Attaques Man-in-the-Middle (MitM) et SSL Stripping",
			"Cryptographie Post-Quantique : Introduction et enjeux",
		},
	},

	// Bloc 7 : Linux kernel internals
	{
		ID:          "mod-kernel-arch",
		Title:       "Module 14 : Architecture Noyau Linux",
		Difficulty:  DifficultyAdvanced,
		Description: "Exploration des entrailles du système : User Space vs Kernel Space.",
		Topics: []string{
			"Architecture Monolithique vs Micro-noyau",
			"Rings de protection (Ring 0 vs Ring 3) et Context Switches",
			"Gestion de la Mémoire : Paging, Virtual Memory et VFS",
			"Appels Système (Syscalls) : Fonctionnement et Tracing (strace)",
			"Ordonnancement (Scheduling) et Gestion des interruptions",
		},
	},
	{
		ID:          "mod-kernel-hacking",
		Title:       "Module 15 : Kernel Hacking & Modules",
		Difficulty:  DifficultyExpert,
		Description: "Formation expert sur le développement noyau : création de modules (LKM), manipulation de structures internes, hooks réseaux et système, techniques de rootkits et théorie de l'exploitation.",
		Topics: []string{
			"Loadable Kernel Modules (LKM) : Développement et cycle de vie",
			"Manipulation des structures internes (task_struct, creds)",
			"Netfilter Hooks : Interception de paquets dans le noyau",
			"Rootkits : Techniques de dissimulation (Syscall Hooking)",
			"Kernel Exploitation Theory : Vulnérabilités et vecteurs d'attaque",
		},
	},
}
