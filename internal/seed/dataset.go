package seed

import (
	"time"

	"github.com/news-portal-api/internal/models"
)

// DefaultDataset returns the embedded launch content: the portal's category
// tree plus enough sample records to render every section of the frontend.
func DefaultDataset() *Dataset {
	now := time.Now()
	spots := func(n int) *int { return &n }

	return &Dataset{
		Categories: []models.CategoryInput{
			{Name: "Política", Slug: "politica"},
			{Name: "Economía", Slug: "economia"},
			{Name: "Deportes", Slug: "deportes"},
			{Name: "Tecnología", Slug: "tecnologia"},
			{Name: "Cultura", Slug: "cultura"},
			{Name: "Internacional", Slug: "internacional"},
			{Name: "Ciencia", Slug: "ciencia"},
		},
		Tags: []models.TagInput{
			{Name: "Elecciones", Slug: "elecciones"},
			{Name: "Inteligencia Artificial", Slug: "inteligencia-artificial"},
			{Name: "Fútbol", Slug: "futbol"},
			{Name: "Mercados", Slug: "mercados"},
			{Name: "Clima", Slug: "clima"},
		},
		Articles: []ArticleSeed{
			{
				CategorySlug: "politica",
				ArticleInput: models.ArticleInput{
					Title:       "El Congreso aprueba la nueva ley de presupuestos",
					Slug:        "congreso-aprueba-ley-presupuestos",
					Excerpt:     "La votación se cerró con una mayoría ajustada tras semanas de negociación.",
					Content:     "Tras un debate maratoniano, el Congreso aprobó anoche la ley de presupuestos con 178 votos a favor. La norma incluye un aumento del gasto social y nuevas partidas para infraestructura.",
					ImageURL:    "https://images.example.com/articles/congreso-presupuestos.jpg",
					Author:      "María Fernández",
					Tags:        []string{"Elecciones"},
					IsFeatured:  true,
					PublishedAt: now.Add(-6 * time.Hour),
				},
			},
			{
				CategorySlug: "tecnologia",
				ArticleInput: models.ArticleInput{
					Title:       "La inteligencia artificial llega a los hospitales públicos",
					Slug:        "ia-llega-hospitales-publicos",
					Excerpt:     "Un sistema de diagnóstico asistido comienza a operar en doce centros.",
					Content:     "El programa piloto de diagnóstico asistido por inteligencia artificial arranca esta semana en doce hospitales. Los radiólogos revisarán cada sugerencia del sistema antes de confirmar el diagnóstico.",
					ImageURL:    "https://images.example.com/articles/ia-hospitales.jpg",
					Author:      "Jorge Ruiz",
					Tags:        []string{"Inteligencia Artificial", "Ciencia"},
					IsFeatured:  true,
					IsViral:     true,
					PublishedAt: now.Add(-26 * time.Hour),
				},
			},
			{
				CategorySlug: "deportes",
				ArticleInput: models.ArticleInput{
					Title:       "Remontada histórica en el derbi de la capital",
					Slug:        "remontada-historica-derbi-capital",
					Excerpt:     "Tres goles en los últimos veinte minutos sellaron una noche para el recuerdo.",
					Content:     "Nadie abandonó el estadio y la fe tuvo premio: tres goles en el último tramo del partido firmaron la mayor remontada en un derbi en dos décadas.",
					ImageURL:    "https://images.example.com/articles/derbi-remontada.jpg",
					Author:      "Lucía Gómez",
					Tags:        []string{"Fútbol"},
					IsViral:     true,
					PublishedAt: now.Add(-49 * time.Hour),
				},
			},
			{
				CategorySlug: "economia",
				ArticleInput: models.ArticleInput{
					Title:       "Los mercados reciben con calma la subida de tipos",
					Slug:        "mercados-calma-subida-tipos",
					Excerpt:     "El banco central elevó los tipos un cuarto de punto, en línea con lo esperado.",
					Content:     "La subida de un cuarto de punto estaba descontada desde hace semanas y las bolsas cerraron planas. Los analistas esperan una pausa en el ciclo de subidas.",
					ImageURL:    "https://images.example.com/articles/mercados-tipos.jpg",
					Author:      "Andrés Molina",
					Tags:        []string{"Mercados"},
					PublishedAt: now.Add(-72 * time.Hour),
				},
			},
			{
				CategorySlug: "ciencia",
				ArticleInput: models.ArticleInput{
					Title:       "Detectado el ciclón tropical más temprano de la temporada",
					Slug:        "ciclon-tropical-mas-temprano-temporada",
					Excerpt:     "Los modelos climáticos anticipan una temporada de huracanes más activa de lo normal.",
					Content:     "El sistema se formó tres semanas antes que el récord anterior. Los meteorólogos lo atribuyen a la temperatura inusualmente alta del Atlántico.",
					ImageURL:    "https://images.example.com/articles/ciclon-temprano.jpg",
					Author:      "Elena Navarro",
					Tags:        []string{"Clima"},
					IsBreaking:  true,
					PublishedAt: now.Add(-3 * time.Hour),
				},
			},
			{
				CategorySlug: "internacional",
				ArticleInput: models.ArticleInput{
					Title:       "Cumbre regional para coordinar la respuesta migratoria",
					Slug:        "cumbre-regional-respuesta-migratoria",
					Excerpt:     "Once países acuerdan un mecanismo conjunto de asilo y fronteras.",
					Content:     "La declaración final de la cumbre establece cuotas de acogida revisables cada semestre y un fondo común para los países de primera entrada.",
					ImageURL:    "https://images.example.com/articles/cumbre-migratoria.jpg",
					Author:      "Pablo Iglesias Montero",
					PublishedAt: now.Add(-96 * time.Hour),
				},
			},
		},
		Workshops: []models.WorkshopInput{
			{
				Title:          "Periodismo de datos desde cero",
				Slug:           "periodismo-datos-desde-cero",
				Description:    "Taller práctico de análisis y visualización de datos para redacciones.",
				ImageURL:       "https://images.example.com/workshops/periodismo-datos.jpg",
				Date:           now.AddDate(0, 0, 14),
				StartTime:      "10:00",
				EndTime:        "14:00",
				Price:          45,
				AvailableSpots: spots(20),
				Location:       "Centro Cultural, Sala 2",
				IsFeatured:     true,
			},
			{
				Title:       "Verificación de noticias en redes sociales",
				Slug:        "verificacion-noticias-redes",
				Description: "Herramientas y método para detectar desinformación. Plazas ilimitadas, sesión online.",
				ImageURL:    "https://images.example.com/workshops/verificacion.jpg",
				Date:        now.AddDate(0, 1, 0),
				StartTime:   "17:00",
				EndTime:     "19:00",
				Price:       0,
				Location:    "Online",
			},
		},
		Events: []models.EventInput{
			{
				Title:        "Encuentro anual de lectores",
				Description:  "Charla abierta con la redacción y visita guiada a la rotativa.",
				Date:         now.AddDate(0, 0, 21),
				Location:     "Sede central",
				Price:        "Gratis",
				ButtonText:   "Reservar plaza",
				ButtonAction: "/eventos/encuentro-lectores",
				BorderColor:  "#c8102e",
			},
			{
				Title:        "Debate: el futuro de la prensa local",
				Description:  "Mesa redonda con directores de cuatro cabeceras regionales.",
				Date:         now.AddDate(0, 2, 0),
				Location:     "Auditorio municipal",
				Price:        "Desde 5€",
				ButtonText:   "Comprar entrada",
				ButtonAction: "/eventos/debate-prensa-local",
				BorderColor:  "#1a1a2e",
			},
		},
		BreakingNews: []models.BreakingNewsInput{
			{
				Content:  "ÚLTIMA HORA: Detectado el ciclón tropical más temprano de la temporada",
				IsActive: true,
			},
		},
	}
}
