package services

import "github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/models"

const imageBase = "https://novosibirsk.kamprok.ru/img/1015/"

var SeedHouseTypes = []models.Service{
	{Name: "Дома из кирпича", Description: "Надежные и долговечные кирпичные дома с отличной теплоизоляцией", ImageURL: imageBase + "s_doma-iz-kirpicha.jpg", PriceFrom: 25000, Category: models.CategoryHouseTypes},
	{Name: "Каркасные дома", Description: "Быстровозводимые энергоэффективные каркасные дома", ImageURL: imageBase + "s_karkasnye-doma.jpg", PriceFrom: 15000, Category: models.CategoryHouseTypes},
	{Name: "Дома из газобетона", Description: "Современные дома из газобетонных блоков с отличными характеристиками", ImageURL: imageBase + "s_doma-iz-gazobetona.jpg", PriceFrom: 20000, Category: models.CategoryHouseTypes},
	{Name: "Профилированный брус", Description: "Экологичные дома из профилированного бруса", ImageURL: imageBase + "s_profilirovannyj-brus.jpg", PriceFrom: 18000, Category: models.CategoryHouseTypes},
	{Name: "Оцилиндрованное бревно", Description: "Традиционные деревянные дома из оцилиндрованного бревна", ImageURL: imageBase + "s_ocilindrovanoe-brevno.jpg", PriceFrom: 22000, Category: models.CategoryHouseTypes},
	{Name: "Дома из SIP панелей", Description: "Современные энергоэффективные дома из SIP панелей", ImageURL: imageBase + "s_doma-iz-sip-panelej.jpg", PriceFrom: 12000, Category: models.CategoryHouseTypes},
	{Name: "Дома из пеноблока", Description: "Доступные и теплые дома из пеноблоков", ImageURL: imageBase + "s_doma-iz-penobloka.jpg", PriceFrom: 16000, Category: models.CategoryHouseTypes},
	{Name: "Дома из двойного бруса", Description: "Инновационная технология двойного бруса", ImageURL: imageBase + "s_doma-iz-dvojnogo-brusa.jpg", PriceFrom: 19000, Category: models.CategoryHouseTypes},
}

var SeedConstructionServices = []models.Service{
	{Name: "Проектирование домов", Description: "Индивидуальное проектирование и архитектурные решения", ImageURL: imageBase + "t_proektirovanie-domov.jpg", Category: models.CategoryConstructionServices},
	{Name: "Благоустройство", Description: "Ландшафтный дизайн и благоустройство территории", ImageURL: imageBase + "t_blagoustrojstvo.jpg", Category: models.CategoryConstructionServices},
	{Name: "Установка септика", Description: "Монтаж и обслуживание септических систем", ImageURL: imageBase + "t_ustanovka-septika.jpg", Category: models.CategoryConstructionServices},
	{Name: "Кадастровые работы", Description: "Межевание участков и кадастровые услуги", ImageURL: imageBase + "t_kadastrovye-raboty.jpg", Category: models.CategoryConstructionServices},
	{Name: "Водоснабжение", Description: "Проектирование и монтаж систем водоснабжения", ImageURL: imageBase + "t_vodosnabzhenie.jpg", Category: models.CategoryConstructionServices},
	{Name: "Строительство домов", Description: "Полный цикл строительства под ключ", ImageURL: imageBase + "t_stroitelstvo-domov.jpg", Category: models.CategoryConstructionServices},
}

var SeedProjects = []models.Project{
	{Title: "Каркасный дом 120 кв.м", Description: "Двухэтажный каркасный дом с мансардой", ImageURL: imageBase + "gs_1.jpg", CompletedAt: "Май 2024"},
	{Title: "Дом из газобетона 150 кв.м", Description: "Современный дом из газобетонных блоков", ImageURL: imageBase + "gs_2.jpg", CompletedAt: "Апрель 2024"},
	{Title: "Дом из бруса 100 кв.м", Description: "Уютный деревянный дом из профилированного бруса", ImageURL: imageBase + "gs_3.jpg", CompletedAt: "Март 2024"},
	{Title: "Кирпичный дом 200 кв.м", Description: "Просторный двухэтажный кирпичный дом", ImageURL: imageBase + "gs_4.jpg", CompletedAt: "Февраль 2024"},
}

var SeedTestimonials = []models.Testimonial{
	{CustomerName: "Александр Петров", CustomerPhoto: "https://novosibirsk.kamprok.ru/img//1015/f1745916071.jpg", Content: "Отличная работа! Дом построили точно в срок, качество на высоте. Рекомендую всем!", Rating: 5, Location: "г. Новосибирск", Date: "15.05.2024"},
	{CustomerName: "Мария Иванова", CustomerPhoto: "https://novosibirsk.kamprok.ru/img//1015/f1745663711.jpg", Content: "Очень довольны результатом. Профессиональная команда, все этапы контролировались.", Rating: 5, Location: "г. Новосибирск", Date: "28.04.2024"},
}

var SeedPricing = []models.PricingItem{
	{Name: "Фундамент ленточный", Price: 3500, Unit: "п.м."},
	{Name: "Стены из газобетона", Price: 2800, Unit: "кв.м."},
	{Name: "Кровля металлочерепица", Price: 1200, Unit: "кв.м."},
	{Name: "Окна ПВХ", Price: 8500, Unit: "шт."},
	{Name: "Внутренняя отделка", Price: 4500, Unit: "кв.м."},
	{Name: "Электромонтаж", Price: 650, Unit: "кв.м."},
	{Name: "Сантехника", Price: 850, Unit: "кв.м."},
	{Name: "Отопление", Price: 1200, Unit: "кв.м."},
}
